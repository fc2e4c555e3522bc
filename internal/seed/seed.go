package seed

import (
	"context"
	"log/slog"

	"camp-signup/internal/model"

	"gorm.io/gorm"
)

var activityNames = []struct {
	Name       string
	Difficulty int
}{
	{"Archery", 2},
	{"Canoeing", 3},
	{"Rock Climbing", 5},
	{"Swimming", 1},
	{"Orienteering", 4},
}

var campers = []struct {
	Name string
	Age  int
}{
	{"Caitlin", 8},
	{"Nicholas", 12},
	{"Tanya", 14},
	{"Marcus", 17},
}

// Run 清空现有数据后写入一组示例营员、活动与报名记录
func Run(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&model.Signup{}, &model.Activity{}, &model.Camper{}} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}

		activities := make([]model.Activity, 0, len(activityNames))
		for _, a := range activityNames {
			activities = append(activities, model.Activity{Name: a.Name, Difficulty: a.Difficulty})
		}
		if err := tx.Create(&activities).Error; err != nil {
			return err
		}

		created := make([]*model.Camper, 0, len(campers))
		for _, c := range campers {
			camper, err := model.NewCamper(model.CamperInput{
				Name: model.Some(c.Name),
				Age:  model.Some(c.Age),
			})
			if err != nil {
				return err
			}
			if err := tx.Create(camper).Error; err != nil {
				return err
			}
			created = append(created, camper)
		}

		// 每位营员报名两项活动，时段依次错开
		var signups int
		for i, camper := range created {
			for j := 0; j < 2; j++ {
				activity := activities[(i+j)%len(activities)]
				signup, err := model.NewSignup(model.SignupInput{
					Time:       model.Some(9 + 2*j + i),
					CamperID:   model.Some(camper.ID),
					ActivityID: model.Some(activity.ID),
				})
				if err != nil {
					return err
				}
				if err := tx.Create(signup).Error; err != nil {
					return err
				}
				signups++
			}
		}

		log.Info("seed finished",
			"campers", len(created),
			"activities", len(activities),
			"signups", signups,
		)
		return nil
	})
}
