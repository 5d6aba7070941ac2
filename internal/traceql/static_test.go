package traceql

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/pdata/ptrace"
)

func TestStaticSet(t *testing.T) {
	var s Static

	s.SetString("foo")
	require.Equal(t, StaticString, s.ValueType())
	require.Equal(t, "foo", s.AsString())
	require.Equal(t, `"foo"`, s.String())

	s.SetInteger(-10)
	require.Equal(t, StaticInteger, s.ValueType())
	require.Equal(t, int64(-10), s.AsInteger())
	require.Empty(t, s.Str)

	s.SetNumber(3.14)
	require.Equal(t, StaticNumber, s.ValueType())
	require.Equal(t, 3.14, s.AsNumber())
	require.Equal(t, "3.14", s.String())
	s.SetNumber(2)
	require.Equal(t, "2.0", s.String())
	s.SetNumber(math.NaN())
	require.True(t, math.IsNaN(s.AsNumber()))

	s.SetBool(true)
	require.Equal(t, StaticBool, s.ValueType())
	require.True(t, s.AsBool())
	require.Equal(t, "true", s.String())

	s.SetNil()
	require.Equal(t, StaticNil, s.ValueType())
	require.True(t, s.IsNil())
	require.Equal(t, "nil", s.String())

	s.SetDuration(90*time.Second, "1m30s")
	require.Equal(t, StaticDuration, s.ValueType())
	require.Equal(t, 90*time.Second, s.AsDuration())
	require.Equal(t, "1m30s", s.String())

	s.SetSpanStatus(ptrace.StatusCodeOk)
	require.Equal(t, StaticSpanStatus, s.ValueType())
	require.Equal(t, ptrace.StatusCodeOk, s.AsSpanStatus())
	require.Equal(t, "ok", s.String())

	s.SetSpanKind(ptrace.SpanKindClient)
	require.Equal(t, StaticSpanKind, s.ValueType())
	require.Equal(t, ptrace.SpanKindClient, s.AsSpanKind())
	require.Equal(t, "client", s.String())
}

func TestStaticTypeCheckOperand(t *testing.T) {
	require.True(t, StaticInteger.CheckOperand(StaticDuration))
	require.True(t, StaticString.CheckOperand(StaticAttribute))
	require.True(t, StaticNil.CheckOperand(StaticString))
	require.False(t, StaticString.CheckOperand(StaticInteger))
	require.False(t, StaticBool.CheckOperand(StaticSpanKind))
}
