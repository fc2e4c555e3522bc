package model

// 以下结构体是各接口固定的返回形状，嵌套关系在这里截断，避免循环引用

type CamperSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type ActivitySummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
}

// CamperSignup 营员详情中的报名记录，不再回指营员
type CamperSignup struct {
	ID         uint            `json:"id"`
	Time       int             `json:"time"`
	CamperID   uint            `json:"camper_id"`
	ActivityID uint            `json:"activity_id"`
	Activity   ActivitySummary `json:"activity"`
}

type CamperDetail struct {
	CamperSummary
	Signups []CamperSignup `json:"signups"`
}

// SignupDetail 报名记录及其两端的摘要，摘要里不含 signups
type SignupDetail struct {
	ID         uint            `json:"id"`
	Time       int             `json:"time"`
	CamperID   uint            `json:"camper_id"`
	ActivityID uint            `json:"activity_id"`
	Camper     CamperSummary   `json:"camper"`
	Activity   ActivitySummary `json:"activity"`
}

func NewCamperSummary(c *Camper) CamperSummary {
	return CamperSummary{ID: c.ID, Name: c.Name, Age: c.Age}
}

func NewCamperSummaries(campers []Camper) []CamperSummary {
	out := make([]CamperSummary, 0, len(campers))
	for i := range campers {
		out = append(out, NewCamperSummary(&campers[i]))
	}
	return out
}

func NewActivitySummary(a *Activity) ActivitySummary {
	return ActivitySummary{ID: a.ID, Name: a.Name, Difficulty: a.Difficulty}
}

func NewActivitySummaries(activities []Activity) []ActivitySummary {
	out := make([]ActivitySummary, 0, len(activities))
	for i := range activities {
		out = append(out, NewActivitySummary(&activities[i]))
	}
	return out
}

// NewCamperDetail 需要预先加载 Signups.Activity
func NewCamperDetail(c *Camper) CamperDetail {
	d := CamperDetail{
		CamperSummary: NewCamperSummary(c),
		Signups:       make([]CamperSignup, 0, len(c.Signups)),
	}
	for _, s := range c.Signups {
		cs := CamperSignup{
			ID:         s.ID,
			Time:       s.Time,
			CamperID:   s.CamperID,
			ActivityID: s.ActivityID,
		}
		if s.Activity != nil {
			cs.Activity = NewActivitySummary(s.Activity)
		}
		d.Signups = append(d.Signups, cs)
	}
	return d
}

// NewSignupDetail 需要预先加载 Camper 与 Activity
func NewSignupDetail(s *Signup) SignupDetail {
	d := SignupDetail{
		ID:         s.ID,
		Time:       s.Time,
		CamperID:   s.CamperID,
		ActivityID: s.ActivityID,
	}
	if s.Camper != nil {
		d.Camper = NewCamperSummary(s.Camper)
	}
	if s.Activity != nil {
		d.Activity = NewActivitySummary(s.Activity)
	}
	return d
}
