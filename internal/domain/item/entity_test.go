//go:build unit

package item_test

import (
	"testing"
	"time"

	"baby-registry/internal/domain/item"
	"baby-registry/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNewItem(t *testing.T) {
	t.Run("trims attributes and starts at zero", func(t *testing.T) {
		now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		it, err := item.NewItem(uuid.Nil, item.Attributes{
			Name:     "  Baby monitor ",
			Price:    dec("89.999"),
			Category: " tech ",
			ImageURL: " https://example.com/m.png ",
		}, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, it.ID())
		assert.Equal(t, "Baby monitor", it.Name().String())
		assert.Equal(t, "90.00", it.Price().Decimal().StringFixed(2))
		assert.Equal(t, "tech", it.Category())
		assert.Equal(t, "https://example.com/m.png", it.ImageURL())
		assert.True(t, it.ContributedAmount().IsZero())
		assert.False(t, it.IsCompleted())
		assert.Equal(t, now, it.CreatedAt())
	})

	cases := []struct {
		name   string
		mutate func(*builder.ItemBuilder)
		errIs  error
	}{
		{"blank name", func(b *builder.ItemBuilder) { b.Name = "   " }, item.ErrEmptyName},
		{"zero price", func(b *builder.ItemBuilder) { b.WithPrice(0) }, item.ErrInvalidPrice},
		{"price rounds to zero", func(b *builder.ItemBuilder) { b.WithPrice(0.004) }, item.ErrInvalidPrice},
		{"bad original url", func(b *builder.ItemBuilder) { b.OriginalURL = "not a url" }, item.ErrInvalidURL},
		{"negative contributed", func(b *builder.ItemBuilder) { b.WithContributed(-1) }, item.ErrNegativeAmount},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			it, err := builder.NewItemBuilder().With(c.mutate).BuildDomain()
			require.Nil(t, it)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestItemUpdate_LeavesContributedAmount(t *testing.T) {
	it := builder.NewItemBuilder().WithContributed(45).BuildStored()
	attrs := builder.NewItemBuilder().Attributes()
	attrs.Name = "Convertible stroller"
	attrs.Price = dec("300")

	require.NoError(t, it.Update(attrs))

	assert.Equal(t, "Convertible stroller", it.Name().String())
	assert.True(t, it.ContributedAmount().Equal(dec("45")))
	assert.True(t, it.Remaining().Equal(dec("255")))
}

func TestItemCanAccept(t *testing.T) {
	cases := []struct {
		name        string
		price       string
		contributed string
		amount      string
		errIs       error
	}{
		{"fits in remaining", "100", "40", "50", nil},
		{"exceeds remaining but not price", "100", "40", "70", nil},
		{"equal to price", "100", "0", "100", nil},
		{"within float tolerance", "100", "0", "100.001", nil},
		{"over price", "100", "0", "100.01", item.ErrAmountExceedsPrice},
		{"already completed", "100", "100", "1", item.ErrAlreadyCompleted},
		{"overshoot counts as completed", "100", "110", "0.01", item.ErrAlreadyCompleted},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			it := builder.NewItemBuilder().
				With(func(b *builder.ItemBuilder) {
					b.Price = dec(c.price)
					b.ContributedAmount = dec(c.contributed)
				}).
				BuildStored()

			err := it.CanAccept(dec(c.amount))

			if c.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestItemRemaining(t *testing.T) {
	got := []string{}
	for _, contributed := range []float64{0, 60, 100, 130} {
		it := builder.NewItemBuilder().WithPrice(100).WithContributed(contributed).BuildStored()
		got = append(got, it.Remaining().StringFixed(2))
	}

	if diff := cmp.Diff([]string{"100.00", "40.00", "0.00", "0.00"}, got); diff != "" {
		t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
	}
}
