package repository

import "time"

const settingsID = "global"

type SettingsEntity struct {
	ID         string          `bson:"_id"`
	Rate       float64         `bson:"rate"`
	InstallKit []KitItemEntity `bson:"install_kit"`
	UpdatedAt  time.Time       `bson:"updated_at"`
}

// KitItemEntity keeps the flat stored shape: either ProductCode or Variants is set.
type KitItemEntity struct {
	Key             string             `bson:"key"`
	Label           string             `bson:"label"`
	Unit            string             `bson:"unit"`
	Step            float64            `bson:"step"`
	DefaultQuantity float64            `bson:"default_quantity"`
	ProductCode     string             `bson:"product_code,omitempty"`
	Variants        []KitVariantEntity `bson:"variants,omitempty"`
}

type KitVariantEntity struct {
	Value       string `bson:"value"`
	ProductCode string `bson:"product_code"`
}
