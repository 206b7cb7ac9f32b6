package entity

type Space struct {
	Base
	Name          string `db:"name"`
	MaxSelectable *int   `db:"max_selectable"` // nil = unbounded
}
