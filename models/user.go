package models

import "time"

// Role values for User.Role.
const (
	RoleStudent  = "student"
	RoleLecturer = "lecturer"
)

// User is a student or lecturer profile document. The ID is the campus
// identity number (NIM for students, NIP for lecturers) and doubles as the
// document key.
type User struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"fullName" json:"fullName"`
	Email        string    `bson:"email" json:"email"`
	Role         string    `bson:"role" json:"role"` // "student" or "lecturer"
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`

	// Student-only fields. DosenPA holds the advisor lecturer's ID.
	ProgramStudi string `bson:"programStudi,omitempty" json:"programStudi,omitempty"`
	TahunMasuk   string `bson:"tahunMasuk,omitempty" json:"tahunMasuk,omitempty"`
	DosenPA      string `bson:"dosenPA,omitempty" json:"dosenPA,omitempty"`

	// Shared optional profile fields.
	NomorHP         string   `bson:"nomorHP,omitempty" json:"nomorHP,omitempty"`
	EmailAlternatif string   `bson:"emailAlternatif,omitempty" json:"emailAlternatif,omitempty"`
	ProfilePicture  string   `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"` // base64 data URL
	Interests       []string `bson:"interests,omitempty" json:"interests,omitempty"`
	OtherInterest   string   `bson:"otherInterest,omitempty" json:"otherInterest,omitempty"`
}

// IsStudent reports whether the user is role-tagged as a student.
func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// IsLecturer reports whether the user is role-tagged as a lecturer.
func (u *User) IsLecturer() bool { return u.Role == RoleLecturer }

// UserRegistrationData is the payload for creating a new account.
type UserRegistrationData struct {
	ID       string `json:"id" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UserProfileUpdate carries the mutable profile fields. Nil pointers leave
// the stored value untouched.
type UserProfileUpdate struct {
	FullName        *string   `json:"fullName,omitempty"`
	ProgramStudi    *string   `json:"programStudi,omitempty"`
	TahunMasuk      *string   `json:"tahunMasuk,omitempty"`
	DosenPA         *string   `json:"dosenPA,omitempty"`
	NomorHP         *string   `json:"nomorHP,omitempty"`
	EmailAlternatif *string   `json:"emailAlternatif,omitempty"`
	ProfilePicture  *string   `json:"profilePicture,omitempty"`
	Interests       *[]string `json:"interests,omitempty"`
	OtherInterest   *string   `json:"otherInterest,omitempty"`
}
