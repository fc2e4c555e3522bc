package model

import "gorm.io/gorm"

type Camper struct {
	Model
	Name    string   `gorm:"type:varchar(100);not null" json:"name"`
	Age     int      `gorm:"not null" json:"age"`
	Signups []Signup `gorm:"foreignKey:CamperID" json:"signups"`
}

// CamperInput 创建与部分更新共用的请求体，只接受 name 和 age
type CamperInput struct {
	Name Optional[string] `json:"name"`
	Age  Optional[int]    `json:"age"`
}

// NewCamper 按 name、age 的顺序逐个赋值，任一字段校验失败即返回
func NewCamper(in CamperInput) (*Camper, error) {
	c := &Camper{}
	if err := c.SetName(in.Name.Value); err != nil {
		return nil, err
	}
	if !in.Age.Valid {
		return nil, ErrInvalidValue
	}
	if err := c.SetAge(in.Age.Value); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply 只写入请求中出现的字段；先在副本上全部校验通过后才修改 c
func (in CamperInput) Apply(c *Camper) error {
	next := *c
	if in.Name.Set {
		if err := next.SetName(in.Name.Value); err != nil {
			return err
		}
	}
	if in.Age.Set {
		if !in.Age.Valid {
			return ErrInvalidValue
		}
		if err := next.SetAge(in.Age.Value); err != nil {
			return err
		}
	}
	*c = next
	return nil
}

func (c *Camper) SetName(name string) error {
	v, err := ValidateName(name)
	if err != nil {
		return err
	}
	c.Name = v
	return nil
}

func (c *Camper) SetAge(age int) error {
	v, err := ValidateAge(age)
	if err != nil {
		return err
	}
	c.Age = v
	return nil
}

// Activities 通过已加载的 Signups 得到参加的活动
func (c *Camper) Activities() []Activity {
	activities := make([]Activity, 0, len(c.Signups))
	for _, s := range c.Signups {
		if s.Activity != nil {
			activities = append(activities, *s.Activity)
		}
	}
	return activities
}

func (c *Camper) BeforeSave(*gorm.DB) error {
	if _, err := ValidateName(c.Name); err != nil {
		return err
	}
	_, err := ValidateAge(c.Age)
	return err
}
