package model

// StateModel mirrors the 'states' table, seeded reference data.
type StateModel struct {
	ID       int64  `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(255);not null"`
	Initials string `gorm:"type:char(2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (StateModel) TableName() string {
	return "states"
}

// CityModel mirrors the 'cities' table. StateID references states.id.
type CityModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(255);not null"`
	StateID int64  `gorm:"not null;index"`

	State *StateModel `gorm:"foreignKey:StateID"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

// AddressModel mirrors the 'addresses' table. CityID references cities.id.
type AddressModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Street     string `gorm:"type:varchar(255);not null"`
	Number     int    `gorm:"not null"`
	CEP        string `gorm:"type:varchar(20);not null"`
	Complement string `gorm:"type:varchar(255)"`
	CityID     int64  `gorm:"not null;index"`

	City *CityModel `gorm:"foreignKey:CityID"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
