package models

// Roles a user account can hold. Self-service registration always assigns
// RoleCustomer; only an admin can hand out the other two.
const (
	RoleCustomer = "CUSTOMER"
	RoleEmployee = "EMPLOYEE"
	RoleAdmin    = "ADMIN"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// User is an account identified by a unique email. Deleting a user cascades
// to its profile and orders.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"` // bcrypt, never serialised
	Role         string `gorm:"size:50;not null;default:CUSTOMER" json:"role"`

	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders  []Order  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

// Profile holds optional contact data for a user, one-to-one by user id.
type Profile struct {
	UserID uint    `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Phone  *string `gorm:"size:50" json:"phone"`
}
