package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reseller-portal-go/internal/models"
)

const owner = "uid-1"

func item(id string, price int64) models.CartItem {
	return models.CartItem{ProductID: id, Name: "product " + id, UnitPrice: price}
}

func TestCart_AddInsertsWithQuantityOne(t *testing.T) {
	cart := NewCartService()
	cart.Add(owner, item("p1", 1000))

	items := cart.Items(owner)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, int64(1000), cart.Total(owner))
}

func TestCart_AddExistingIncrementsQuantity(t *testing.T) {
	cart := NewCartService()
	cart.Add(owner, item("p1", 1000))
	cart.Add(owner, item("p1", 1000))
	cart.Add(owner, item("p1", 1000))

	items := cart.Items(owner)
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(3000), cart.Total(owner))
}

func TestCart_TotalIsSumOverItems(t *testing.T) {
	cart := NewCartService()
	cart.Add(owner, item("p1", 1000))
	cart.Add(owner, item("p1", 1000))
	cart.Add(owner, item("p2", 2500))

	// 2×1000 + 1×2500
	assert.Equal(t, int64(4500), cart.Total(owner))
}

func TestCart_RemoveDeletesEntry(t *testing.T) {
	cart := NewCartService()
	cart.Add(owner, item("p1", 1000))
	cart.Add(owner, item("p2", 2500))

	cart.Remove(owner, "p1")

	items := cart.Items(owner)
	assert.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
	assert.Equal(t, int64(2500), cart.Total(owner))
}

func TestCart_RemoveAbsentIsNoOp(t *testing.T) {
	cart := NewCartService()
	cart.Add(owner, item("p1", 1000))

	cart.Remove(owner, "missing")
	cart.Remove("other-owner", "p1")

	assert.Len(t, cart.Items(owner), 1)
}

func TestCart_ClearThenTotalIsZero(t *testing.T) {
	cart := NewCartService()
	cart.Add(owner, item("p1", 1000))
	cart.Add(owner, item("p2", 2500))

	cart.Clear(owner)

	assert.Empty(t, cart.Items(owner))
	assert.Equal(t, int64(0), cart.Total(owner))
}

func TestCart_OwnersAreIsolated(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice", item("p1", 1000))
	cart.Add("bob", item("p2", 2500))

	assert.Equal(t, int64(1000), cart.Total("alice"))
	assert.Equal(t, int64(2500), cart.Total("bob"))
}
