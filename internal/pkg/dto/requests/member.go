package requests

type UpdateMember struct {
	ID                string `json:"_id,omitempty"`
	MemberNick        string `json:"memberNick,omitempty" validate:"omitempty,min=3,max=12"`
	MemberPhone       string `json:"memberPhone,omitempty" validate:"omitempty,min=6,max=16"`
	MemberFullName    string `json:"memberFullName,omitempty" validate:"omitempty,max=50"`
	MemberAddress     string `json:"memberAddress,omitempty" validate:"omitempty,max=200"`
	MemberDesc        string `json:"memberDesc,omitempty" validate:"omitempty,max=500"`
	MemberGender      string `json:"memberGender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	MemberDateOfBirth string `json:"memberDateOfBirth,omitempty"`
	MemberBloodGroup  string `json:"memberBloodGroup,omitempty" validate:"omitempty,max=3"`
	MemberImage       string `json:"memberImage,omitempty"`
}

// Avatar is an uploaded profile picture.
type Avatar struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}
