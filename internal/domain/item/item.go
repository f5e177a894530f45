package item

const (
	CategoryArmor  = "Armor"
	CategoryWeapon = "Weapon"
	CategoryShield = "Shield"

	GenericTemplate = "G"
	GenericVariant  = "V"
)

// SourceRef points at an additional book an item is printed in
type SourceRef struct {
	Source string `json:"source"`
	Page   int    `json:"page,omitempty"`
}

// WeaponData holds the weapon statistics of an item (or of the second mode
// of a combination weapon)
type WeaponData struct {
	Damage     string `json:"damage,omitempty"`
	DamageType string `json:"damageType,omitempty"`
	Group      string `json:"group,omitempty"`
	Hands      Scalar `json:"hands,omitzero"`
	Range      Scalar `json:"range,omitzero"`
	Reload     Scalar `json:"reload,omitzero"`
}

// IsRanged reports whether the range flag is set
func (w *WeaponData) IsRanged() bool {
	return w != nil && w.Range.Truthy()
}

type ArmorData struct {
	AC       int    `json:"ac,omitempty"`
	DexCap   int    `json:"dexCap,omitempty"`
	Strength int    `json:"str,omitempty"`
	CheckPen int    `json:"checkPen,omitempty"`
	SpeedPen int    `json:"speedPen,omitempty"`
	Group    string `json:"group,omitempty"`
}

type ShieldData struct {
	AC       int    `json:"ac,omitempty"`
	HP       int    `json:"hp,omitempty"`
	BT       int    `json:"bt,omitempty"`
	Hardness int    `json:"hardness,omitempty"`
	Group    string `json:"group,omitempty"`
}

// Item is a raw catalog record as published in item data files or
// contributed as homebrew. Records are treated as read-only once loaded.
type Item struct {
	Name         string      `json:"name"`
	Source       string      `json:"source"`
	Page         int         `json:"page,omitempty"`
	OtherSources []SourceRef `json:"otherSources,omitempty"`
	UniqueID     string      `json:"uniqueId,omitempty"`

	Level       Scalar     `json:"level,omitzero"`
	Bulk        Scalar     `json:"bulk,omitzero"`
	Price       *Price     `json:"price,omitempty"`
	Category    StringList `json:"category,omitempty"`
	SubCategory StringList `json:"subCategory,omitempty"`
	Group       string     `json:"group,omitempty"`
	Hands       Scalar     `json:"hands,omitzero"`
	Ammunition  string     `json:"ammunition,omitempty"`
	AppliesTo   []string   `json:"appliesTo,omitempty"`
	Traits      []string   `json:"traits,omitempty"`
	Entries     []Entry    `json:"entries,omitempty"`
	Equipment   bool       `json:"equipment,omitempty"`
	Generic     string     `json:"generic,omitempty"`
	Count       int        `json:"count,omitempty"`

	WeaponData      *WeaponData `json:"weaponData,omitempty"`
	ComboWeaponData *WeaponData `json:"comboWeaponData,omitempty"`
	ArmorData       *ArmorData  `json:"armorData,omitempty"`
	ShieldData      *ShieldData `json:"shieldData,omitempty"`
}

// HasCategory reports whether any of the item's categories equals category
func (i *Item) HasCategory(category string) bool {
	return i.Category.Contains(category)
}
