package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/camplan/internal/core/domain"
)

func TestCanonicalBytes(t *testing.T) {
	t.Parallel()

	t.Run("leaves are NUL terminated", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []byte("contour\x00"), domain.CanonicalBytes(domain.Str("contour")))
		assert.Equal(t, []byte("12.500000\x00"), domain.CanonicalBytes(domain.Num(12.5)))
	})

	t.Run("lists are parenthesized", func(t *testing.T) {
		t.Parallel()
		tree := domain.List{
			domain.Str("drill"),
			domain.Num(8),
			domain.List{domain.Num(10), domain.Num(20)},
		}
		want := "(drill\x008.000000\x00(10.000000\x0020.000000\x00))"
		assert.Equal(t, []byte(want), domain.CanonicalBytes(tree))
	})

	t.Run("numeric noise below the precision collapses", func(t *testing.T) {
		t.Parallel()
		a := domain.CanonicalBytes(domain.Num(1.0))
		b := domain.CanonicalBytes(domain.Num(1.0 + 1e-9))
		assert.Equal(t, a, b)
	})

	t.Run("nesting is unambiguous", func(t *testing.T) {
		t.Parallel()
		flat := domain.List{domain.Str("a"), domain.Str("b")}
		nested := domain.List{domain.List{domain.Str("a")}, domain.Str("b")}
		require.NotEqual(t, domain.CanonicalBytes(flat), domain.CanonicalBytes(nested))
	})

	t.Run("nil tree encodes to nothing", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, domain.CanonicalBytes(nil))
	})
}
