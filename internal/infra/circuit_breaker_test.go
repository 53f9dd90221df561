package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRelay = errors.New("smtp relay down")

func cbDePrueba() *CircuitBreaker {
	return NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      30 * time.Millisecond,
	})
}

func fallar(cb *CircuitBreaker, veces int) {
	for i := 0; i < veces; i++ {
		_ = cb.Execute(func() error { return errRelay })
	}
}

func TestCircuitBreaker_AbreTrasFallosConsecutivos(t *testing.T) {
	cb := cbDePrueba()
	assert.Equal(t, CBClosed, cb.State())

	fallar(cb, 2)
	assert.Equal(t, CBClosed, cb.State())

	fallar(cb, 1)
	assert.Equal(t, CBOpen, cb.State())

	err := cb.Execute(func() error { return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_ExitoReiniciaElConteo(t *testing.T) {
	cb := cbDePrueba()

	fallar(cb, 2)
	require.NoError(t, cb.Execute(func() error { return nil }))
	fallar(cb, 2)

	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreaker_SemiAbiertoTrasTimeout(t *testing.T) {
	cb := cbDePrueba()
	fallar(cb, 3)
	require.Equal(t, CBOpen, cb.State())

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, CBHalfOpen, cb.State())
}

func TestCircuitBreaker_CierraTrasExitosEnSemiAbierto(t *testing.T) {
	cb := cbDePrueba()
	fallar(cb, 3)
	time.Sleep(40 * time.Millisecond)
	require.Equal(t, CBHalfOpen, cb.State())

	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBHalfOpen, cb.State())

	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreaker_FalloEnSemiAbiertoReabre(t *testing.T) {
	cb := cbDePrueba()
	fallar(cb, 3)
	time.Sleep(40 * time.Millisecond)
	require.Equal(t, CBHalfOpen, cb.State())

	fallar(cb, 1)
	assert.Equal(t, CBOpen, cb.State())
}

func TestCBState_String(t *testing.T) {
	assert.Equal(t, "closed", CBClosed.String())
	assert.Equal(t, "open", CBOpen.String())
	assert.Equal(t, "half-open", CBHalfOpen.String())
}
