package testutil

import "github.com/leapstack-labs/itemdb/internal/item"

// SampleItem returns a populated item with the given entry and name. The
// remaining fields follow a starter weapon so that every storage class
// (integer, real, text) carries a non-zero value.
func SampleItem(entry int64, name string) *item.Item {
	return &item.Item{
		Entry:          entry,
		Class:          2,
		Subclass:       7,
		Name:           name,
		DisplayID:      1542,
		Quality:        1,
		BuyPrice:       35,
		SellPrice:      7,
		InventoryType:  21,
		AllowableClass: -1,
		AllowableRace:  -1,
		ItemLevel:      2,
		RequiredLevel:  1,
		Stackable:      1,
		StatType1:      4,
		StatValue1:     1,
		DmgMin1:        1,
		DmgMax1:        3.5,
		Delay:          1900,
		RangedModRange: 0,
		SpellPPMRate1:  1.5,
		Bonding:        1,
		Description:    "It's seen better days.",
		Material:       1,
		Sheath:         3,
		MaxDurability:  20,
		ScriptName:     "item_worn",
	}
}
