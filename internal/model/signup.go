package model

import "gorm.io/gorm"

// Signup 营员在某个整点时段报名某项活动
type Signup struct {
	Model
	Time       int       `gorm:"not null" json:"time"` // 0-23 点
	CamperID   uint      `gorm:"not null;index" json:"camper_id"`
	ActivityID uint      `gorm:"not null;index" json:"activity_id"`
	Camper     *Camper   `gorm:"foreignKey:CamperID" json:"camper,omitempty"`
	Activity   *Activity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
}

type SignupInput struct {
	Time       Optional[int]  `json:"time"`
	ActivityID Optional[uint] `json:"activity_id"`
	CamperID   Optional[uint] `json:"camper_id"`
}

// NewSignup 先校验时段，再检查外键字段是否给出；外键是否存在由调用方查询
func NewSignup(in SignupInput) (*Signup, error) {
	s := &Signup{}
	if !in.Time.Valid {
		return nil, ErrInvalidValue
	}
	if err := s.SetTime(in.Time.Value); err != nil {
		return nil, err
	}
	if !in.ActivityID.Valid || !in.CamperID.Valid {
		return nil, ErrInvalidValue
	}
	s.ActivityID = in.ActivityID.Value
	s.CamperID = in.CamperID.Value
	return s, nil
}

func (s *Signup) SetTime(hour int) error {
	v, err := ValidateTime(hour)
	if err != nil {
		return err
	}
	s.Time = v
	return nil
}

func (s *Signup) BeforeSave(*gorm.DB) error {
	_, err := ValidateTime(s.Time)
	return err
}
