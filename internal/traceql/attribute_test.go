package traceql

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		attr    string
		wantA   Attribute
		wantErr bool
	}{
		{`.service.name`, Attribute{Name: "service.name"}, false},
		{`span.service.name`, Attribute{Name: "service.name", Scope: ScopeSpan}, false},
		{`resource.service.name`, Attribute{Name: "service.name", Scope: ScopeResource}, false},
		{`parent.span.service.name`, Attribute{Name: "service.name", Scope: ScopeSpan, Parent: true}, false},
		{`parent.foo`, Attribute{Name: "foo", Parent: true}, false},
		{`status`, Attribute{Prop: SpanStatus}, false},
		{`parent`, Attribute{Prop: SpanParent}, false},

		{`{`, Attribute{}, true},
		{``, Attribute{}, true},
		{`.a .b`, Attribute{}, true},
		{`resource.`, Attribute{}, true},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			gotA, err := ParseAttribute(tt.attr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantA, gotA)
		})
	}
}

func TestAttribute_String(t *testing.T) {
	tests := []struct {
		attr string
		want string
	}{
		{`.service.name`, ".service.name"},
		{`span.foo`, "span.foo"},
		{`resource.foo`, "resource.foo"},
		{`parent.foo`, "parent.foo"},
		{`parent.resource.foo`, "parent.resource.foo"},
		{`rootServiceName`, "rootServiceName"},
		{`duration`, "duration"},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			a, err := ParseAttribute(tt.attr)
			require.NoError(t, err)
			require.Equal(t, tt.want, a.String())
		})
	}
}

func TestSpanPropertyIsTraceLevel(t *testing.T) {
	for _, p := range []SpanProperty{RootSpanName, RootServiceName, TraceDuration} {
		require.True(t, p.IsTraceLevel(), p.String())
	}
	for _, p := range []SpanProperty{SpanAttribute, SpanDuration, SpanName, SpanParent} {
		require.False(t, p.IsTraceLevel(), p.String())
	}
}
