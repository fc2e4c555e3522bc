package camper

import (
	"net/http"
	"testing"

	"camp-signup/internal/global/response"
	"camp-signup/internal/model"
	"camp-signup/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := test.NewDB(t)
	m := &ModuleCamper{}
	m.Init()
	r := test.NewRouter()
	m.InitRouter(r.Group("/"))
	return r, db
}

func countCampers(t *testing.T, db *gorm.DB) int64 {
	var n int64
	require.NoError(t, db.Model(&model.Camper{}).Count(&n).Error)
	return n
}

func seedCamper(t *testing.T, db *gorm.DB, name string, age int) *model.Camper {
	c := &model.Camper{Name: name, Age: age}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestCreateCamper(t *testing.T) {
	r, db := newRouter(t)

	w := test.DoRequest(t, r, http.MethodPost, "/campers", gin.H{"name": "Alex", "age": 12})

	require.Equal(t, http.StatusCreated, w.Code)
	body := test.Decode[map[string]any](t, w)
	assert.NotZero(t, body["id"])
	assert.Equal(t, "Alex", body["name"])
	assert.EqualValues(t, 12, body["age"])
	assert.NotContains(t, body, "signups")
	assert.EqualValues(t, 1, countCampers(t, db))
}

func TestCreateCamperAgeBounds(t *testing.T) {
	r, _ := newRouter(t)
	for _, age := range []int{8, 18} {
		w := test.DoRequest(t, r, http.MethodPost, "/campers", gin.H{"name": "Edge", "age": age})
		assert.Equal(t, http.StatusCreated, w.Code, "age %d", age)
	}
}

func TestCreateCamperRejectsAgeOutOfRange(t *testing.T) {
	r, db := newRouter(t)
	for _, age := range []int{-1, 5, 7, 19, 100} {
		w := test.DoRequest(t, r, http.MethodPost, "/campers", gin.H{"name": "Alex", "age": age})
		test.ValidationEqual(t, "Age must be between 8 and 18", w)
	}
	assert.Zero(t, countCampers(t, db))
}

func TestCreateCamperRejectsMissingName(t *testing.T) {
	r, db := newRouter(t)
	bodies := []any{
		gin.H{"age": 12},
		gin.H{"name": "", "age": 12},
		gin.H{"name": nil, "age": 12},
	}
	for _, b := range bodies {
		w := test.DoRequest(t, r, http.MethodPost, "/campers", b)
		test.ValidationEqual(t, "Name must exist", w)
	}
	assert.Zero(t, countCampers(t, db))
}

func TestCreateCamperRejectsMalformedInput(t *testing.T) {
	r, db := newRouter(t)
	bodies := []any{
		gin.H{"name": "Alex"},
		gin.H{"name": "Alex", "age": nil},
		gin.H{"name": 5, "age": 12},
		gin.H{"name": "Alex", "age": "twelve"},
		test.Raw(`{"name": "Alex", "age": `),
		test.Raw(`[]`),
		test.Raw(`null`),
		test.Raw(`{"name":"Alex","age":12} {"name":"Sam","age":9}`),
	}
	for _, b := range bodies {
		w := test.DoRequest(t, r, http.MethodPost, "/campers", b)
		test.ErrorEqual(t, response.ErrInvalidData, w)
	}
	assert.Zero(t, countCampers(t, db))
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	r, _ := newRouter(t)

	created := test.Decode[model.CamperSummary](t,
		test.DoRequest(t, r, http.MethodPost, "/campers", gin.H{"name": "Jordan", "age": 15}))

	w := test.DoRequest(t, r, http.MethodGet, "/campers/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := test.Decode[model.CamperDetail](t, w)
	assert.Equal(t, created.ID, detail.ID)
	assert.Equal(t, "Jordan", detail.Name)
	assert.Equal(t, 15, detail.Age)
	assert.Empty(t, detail.Signups)

	// 空列表序列化为 []，而不是 null
	assert.Contains(t, w.Body.String(), `"signups":[]`)
}

func TestGetCamperNotFound(t *testing.T) {
	r, _ := newRouter(t)
	for _, path := range []string{"/campers/42", "/campers/abc", "/campers/0"} {
		w := test.DoRequest(t, r, http.MethodGet, path, nil)
		test.ErrorEqual(t, response.ErrCamperNotFound, w)
	}
}

func TestListCampersIsSummary(t *testing.T) {
	r, db := newRouter(t)
	seedCamper(t, db, "Alex", 12)
	seedCamper(t, db, "Sam", 9)

	w := test.DoRequest(t, r, http.MethodGet, "/campers", nil)

	require.Equal(t, http.StatusOK, w.Code)
	list := test.Decode[[]map[string]any](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "Alex", list[0]["name"])
	assert.Equal(t, "Sam", list[1]["name"])
	for _, c := range list {
		assert.NotContains(t, c, "signups")
	}
}

func TestListCampersEmpty(t *testing.T) {
	r, _ := newRouter(t)
	w := test.DoRequest(t, r, http.MethodGet, "/campers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetCamperDetailHasNoCycles(t *testing.T) {
	r, db := newRouter(t)
	camper := seedCamper(t, db, "Alex", 12)
	activity := &model.Activity{Name: "Archery", Difficulty: 2}
	require.NoError(t, db.Create(activity).Error)
	require.NoError(t, db.Create(&model.Signup{Time: 9, CamperID: camper.ID, ActivityID: activity.ID}).Error)

	w := test.DoRequest(t, r, http.MethodGet, "/campers/"+itoa(camper.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := test.Decode[map[string]any](t, w)
	signups, ok := body["signups"].([]any)
	require.True(t, ok)
	require.Len(t, signups, 1)

	signup := signups[0].(map[string]any)
	assert.EqualValues(t, 9, signup["time"])
	assert.EqualValues(t, camper.ID, signup["camper_id"])
	assert.NotContains(t, signup, "camper")

	nested := signup["activity"].(map[string]any)
	assert.Equal(t, "Archery", nested["name"])
	assert.EqualValues(t, 2, nested["difficulty"])
	assert.NotContains(t, nested, "signups")
}

func TestUpdateCamper(t *testing.T) {
	r, db := newRouter(t)
	camper := seedCamper(t, db, "Alex", 12)

	w := test.DoRequest(t, r, http.MethodPatch, "/campers/"+itoa(camper.ID), gin.H{"name": "Alexis", "age": 13})

	require.Equal(t, http.StatusAccepted, w.Code)
	body := test.Decode[map[string]any](t, w)
	assert.Equal(t, "Alexis", body["name"])
	assert.EqualValues(t, 13, body["age"])
	assert.NotContains(t, body, "signups")

	var stored model.Camper
	require.NoError(t, db.First(&stored, camper.ID).Error)
	assert.Equal(t, "Alexis", stored.Name)
	assert.Equal(t, 13, stored.Age)
}

func TestUpdateCamperSingleField(t *testing.T) {
	r, db := newRouter(t)
	camper := seedCamper(t, db, "Alex", 12)

	w := test.DoRequest(t, r, http.MethodPatch, "/campers/"+itoa(camper.ID), gin.H{"age": 16})

	require.Equal(t, http.StatusAccepted, w.Code)
	updated := test.Decode[model.CamperSummary](t, w)
	assert.Equal(t, "Alex", updated.Name)
	assert.Equal(t, 16, updated.Age)
}

func TestUpdateCamperRejectsInvalidAge(t *testing.T) {
	r, db := newRouter(t)
	camper := seedCamper(t, db, "Alex", 12)

	w := test.DoRequest(t, r, http.MethodPatch, "/campers/"+itoa(camper.ID), gin.H{"age": 19})

	test.ValidationEqual(t, "Age must be between 8 and 18", w)
	var stored model.Camper
	require.NoError(t, db.First(&stored, camper.ID).Error)
	assert.Equal(t, 12, stored.Age)
}

func TestUpdateCamperIsAllOrNothing(t *testing.T) {
	r, db := newRouter(t)
	camper := seedCamper(t, db, "Alex", 12)

	w := test.DoRequest(t, r, http.MethodPatch, "/campers/"+itoa(camper.ID), gin.H{"name": "Sam", "age": 30})

	test.ValidationEqual(t, "Age must be between 8 and 18", w)
	var stored model.Camper
	require.NoError(t, db.First(&stored, camper.ID).Error)
	assert.Equal(t, "Alex", stored.Name)
	assert.Equal(t, 12, stored.Age)
}

func TestUpdateCamperRejectsEmptyName(t *testing.T) {
	r, db := newRouter(t)
	camper := seedCamper(t, db, "Alex", 12)

	for _, b := range []any{gin.H{"name": ""}, gin.H{"name": nil}} {
		w := test.DoRequest(t, r, http.MethodPatch, "/campers/"+itoa(camper.ID), b)
		test.ValidationEqual(t, "Name must exist", w)
	}
}

func TestUpdateCamperRejectsUnknownAndMalformed(t *testing.T) {
	r, db := newRouter(t)
	camper := seedCamper(t, db, "Alex", 12)
	bodies := []any{
		gin.H{"nickname": "Al"},
		gin.H{"id": 99},
		gin.H{"age": nil},
		gin.H{"age": "old"},
		test.Raw(`{"age":`),
		test.Raw(`null`),
		test.Raw(`[]`),
		test.Raw(`{"age":10} garbage`),
		test.Raw(`{"age":11}{"age":9}`),
	}
	for _, b := range bodies {
		w := test.DoRequest(t, r, http.MethodPatch, "/campers/"+itoa(camper.ID), b)
		test.ErrorEqual(t, response.ErrInvalidCamper, w)
	}

	var stored model.Camper
	require.NoError(t, db.First(&stored, camper.ID).Error)
	assert.Equal(t, camper.ID, stored.ID)
	assert.Equal(t, "Alex", stored.Name)
	assert.Equal(t, 12, stored.Age)
}

func TestUpdateCamperNotFound(t *testing.T) {
	r, _ := newRouter(t)
	for _, path := range []string{"/campers/7", "/campers/x"} {
		w := test.DoRequest(t, r, http.MethodPatch, path, gin.H{"age": 10})
		test.ErrorEqual(t, response.ErrCamperNotFound, w)
	}
	// 营员不存在时优先返回 404
	w := test.DoRequest(t, r, http.MethodPatch, "/campers/7", test.Raw(`{`))
	test.ErrorEqual(t, response.ErrCamperNotFound, w)
}
