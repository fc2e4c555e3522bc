package model

type Activity struct {
	Model
	Name       string `gorm:"type:varchar(100)" json:"name"`
	Difficulty int    `json:"difficulty"`
	// 删除活动时一并删除其报名记录
	Signups []Signup `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"signups"`
}

// Campers 通过已加载的 Signups 得到报名的营员
func (a *Activity) Campers() []Camper {
	campers := make([]Camper, 0, len(a.Signups))
	for _, s := range a.Signups {
		if s.Camper != nil {
			campers = append(campers, *s.Camper)
		}
	}
	return campers
}
