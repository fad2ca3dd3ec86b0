// Package item defines the game item record stored in the items table.
//
// The Item struct is the single declaration of the table layout: the order of
// its fields is the column order, the db tag is the column name, and the Go
// type selects the SQLite storage class. Schema creation, insertion, reads and
// input decoding are all derived from it.
package item

// TableName is the relation items are stored in.
const TableName = "items"

// PrimaryKey is the column that identifies an item. It is declared as
// INTEGER PRIMARY KEY, so it doubles as the SQLite rowid.
const PrimaryKey = "entry"

// Item is one row of the items table.
type Item struct {
	Entry                     int64  `db:"entry"`
	Class                     int64  `db:"class"`
	Subclass                  int64  `db:"subclass"`
	Name                      string `db:"name"`
	DisplayID                 int64  `db:"displayid"`
	Quality                   int64  `db:"Quality"`
	Flags                     int64  `db:"Flags"`
	BuyCount                  int64  `db:"BuyCount"`
	BuyPrice                  int64  `db:"BuyPrice"`
	SellPrice                 int64  `db:"SellPrice"`
	InventoryType             int64  `db:"InventoryType"`
	AllowableClass            int64  `db:"AllowableClass"`
	AllowableRace             int64  `db:"AllowableRace"`
	ItemLevel                 int64  `db:"ItemLevel"`
	RequiredLevel             int64  `db:"RequiredLevel"`
	RequiredSkill             int64  `db:"RequiredSkill"`
	RequiredSkillRank         int64  `db:"RequiredSkillRank"`
	RequiredSpell             int64  `db:"requiredspell"`
	RequiredHonorRank         int64  `db:"requiredhonorrank"`
	RequiredCityRank          int64  `db:"RequiredCityRank"`
	RequiredReputationFaction int64  `db:"RequiredReputationFaction"`
	RequiredReputationRank    int64  `db:"RequiredReputationRank"`
	MaxCount                  int64  `db:"maxcount"`
	Stackable                 int64  `db:"stackable"`
	ContainerSlots            int64  `db:"ContainerSlots"`

	// Stat slots.
	StatType1   int64 `db:"stat_type1"`
	StatValue1  int64 `db:"stat_value1"`
	StatType2   int64 `db:"stat_type2"`
	StatValue2  int64 `db:"stat_value2"`
	StatType3   int64 `db:"stat_type3"`
	StatValue3  int64 `db:"stat_value3"`
	StatType4   int64 `db:"stat_type4"`
	StatValue4  int64 `db:"stat_value4"`
	StatType5   int64 `db:"stat_type5"`
	StatValue5  int64 `db:"stat_value5"`
	StatType6   int64 `db:"stat_type6"`
	StatValue6  int64 `db:"stat_value6"`
	StatType7   int64 `db:"stat_type7"`
	StatValue7  int64 `db:"stat_value7"`
	StatType8   int64 `db:"stat_type8"`
	StatValue8  int64 `db:"stat_value8"`
	StatType9   int64 `db:"stat_type9"`
	StatValue9  int64 `db:"stat_value9"`
	StatType10  int64 `db:"stat_type10"`
	StatValue10 int64 `db:"stat_value10"`

	// Damage slots.
	DmgMin1  float64 `db:"dmg_min1"`
	DmgMax1  float64 `db:"dmg_max1"`
	DmgType1 int64   `db:"dmg_type1"`
	DmgMin2  float64 `db:"dmg_min2"`
	DmgMax2  float64 `db:"dmg_max2"`
	DmgType2 int64   `db:"dmg_type2"`
	DmgMin3  float64 `db:"dmg_min3"`
	DmgMax3  float64 `db:"dmg_max3"`
	DmgType3 int64   `db:"dmg_type3"`
	DmgMin4  float64 `db:"dmg_min4"`
	DmgMax4  float64 `db:"dmg_max4"`
	DmgType4 int64   `db:"dmg_type4"`
	DmgMin5  float64 `db:"dmg_min5"`
	DmgMax5  float64 `db:"dmg_max5"`
	DmgType5 int64   `db:"dmg_type5"`

	Armor          int64   `db:"armor"`
	HolyRes        int64   `db:"holy_res"`
	FireRes        int64   `db:"fire_res"`
	NatureRes      int64   `db:"nature_res"`
	FrostRes       int64   `db:"frost_res"`
	ShadowRes      int64   `db:"shadow_res"`
	ArcaneRes      int64   `db:"arcane_res"`
	Delay          int64   `db:"delay"`
	AmmoType       int64   `db:"ammo_type"`
	RangedModRange float64 `db:"RangedModRange"`

	// Spell trigger slots.
	SpellID1               int64   `db:"spellid_1"`
	SpellTrigger1          int64   `db:"spelltrigger_1"`
	SpellCharges1          int64   `db:"spellcharges_1"`
	SpellPPMRate1          float64 `db:"spellppmRate_1"`
	SpellCooldown1         int64   `db:"spellcooldown_1"`
	SpellCategory1         int64   `db:"spellcategory_1"`
	SpellCategoryCooldown1 int64   `db:"spellcategorycooldown_1"`
	SpellID2               int64   `db:"spellid_2"`
	SpellTrigger2          int64   `db:"spelltrigger_2"`
	SpellCharges2          int64   `db:"spellcharges_2"`
	SpellPPMRate2          float64 `db:"spellppmRate_2"`
	SpellCooldown2         int64   `db:"spellcooldown_2"`
	SpellCategory2         int64   `db:"spellcategory_2"`
	SpellCategoryCooldown2 int64   `db:"spellcategorycooldown_2"`
	SpellID3               int64   `db:"spellid_3"`
	SpellTrigger3          int64   `db:"spelltrigger_3"`
	SpellCharges3          int64   `db:"spellcharges_3"`
	SpellPPMRate3          float64 `db:"spellppmRate_3"`
	SpellCooldown3         int64   `db:"spellcooldown_3"`
	SpellCategory3         int64   `db:"spellcategory_3"`
	SpellCategoryCooldown3 int64   `db:"spellcategorycooldown_3"`
	SpellID4               int64   `db:"spellid_4"`
	SpellTrigger4          int64   `db:"spelltrigger_4"`
	SpellCharges4          int64   `db:"spellcharges_4"`
	SpellPPMRate4          float64 `db:"spellppmRate_4"`
	SpellCooldown4         int64   `db:"spellcooldown_4"`
	SpellCategory4         int64   `db:"spellcategory_4"`
	SpellCategoryCooldown4 int64   `db:"spellcategorycooldown_4"`
	SpellID5               int64   `db:"spellid_5"`
	SpellTrigger5          int64   `db:"spelltrigger_5"`
	SpellCharges5          int64   `db:"spellcharges_5"`
	SpellPPMRate5          float64 `db:"spellppmRate_5"`
	SpellCooldown5         int64   `db:"spellcooldown_5"`
	SpellCategory5         int64   `db:"spellcategory_5"`
	SpellCategoryCooldown5 int64   `db:"spellcategorycooldown_5"`

	Bonding        int64  `db:"bonding"`
	Description    string `db:"description"`
	PageText       int64  `db:"PageText"`
	LanguageID     int64  `db:"LanguageID"`
	PageMaterial   int64  `db:"PageMaterial"`
	StartQuest     int64  `db:"startquest"`
	LockID         int64  `db:"lockid"`
	Material       int64  `db:"Material"`
	Sheath         int64  `db:"sheath"`
	RandomProperty int64  `db:"RandomProperty"`
	Block          int64  `db:"block"`
	ItemSet        int64  `db:"itemset"`
	MaxDurability  int64  `db:"MaxDurability"`
	Area           int64  `db:"area"`
	Map            int64  `db:"Map"`
	BagFamily      int64  `db:"BagFamily"`
	ScriptName     string `db:"ScriptName"`
	DisenchantID   int64  `db:"DisenchantID"`
	FoodType       int64  `db:"FoodType"`
	MinMoneyLoot   int64  `db:"minMoneyLoot"`
	MaxMoneyLoot   int64  `db:"maxMoneyLoot"`
	Duration       int64  `db:"Duration"`
	ExtraFlags     int64  `db:"ExtraFlags"`
}
