package models

import "gorm.io/gorm"

// Named is implemented by entities keyed by a globally unique name.
// Names form one flat namespace per entity type: a product called "Widget"
// is the same row whichever brand is asked about it.
type Named interface {
	EntityID() uint
	EntityName() string
}

// FindByName loads the entity with exactly the given name.
// A miss is reported as gorm.ErrRecordNotFound.
func FindByName[T any, PT interface {
	*T
	Named
}](tx *gorm.DB, name string) (*T, error) {
	var entity T
	if err := tx.Where("name = ?", name).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (v Vendor) EntityID() uint      { return v.ID }
func (v Vendor) EntityName() string  { return v.Name }
func (b Brand) EntityID() uint       { return b.ID }
func (b Brand) EntityName() string   { return b.Name }
func (p Product) EntityID() uint     { return p.ID }
func (p Product) EntityName() string { return p.Name }
