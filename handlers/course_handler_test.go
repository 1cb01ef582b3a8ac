package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (e *testEnv) createCourse(t *testing.T, tourID string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/tours/"+tourID+"/courses", gin.H{
		"name":        "CS101",
		"description": "intro",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, ok := decodeBody(t, w)["id"].(string)
	require.True(t, ok)
	return id
}

func TestCreateCourseValidatesParent(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/tours/bogus/courses", gin.H{
		"name":        "CS101",
		"description": "intro",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid tour ID format", decodeBody(t, w)["message"])

	absent := primitive.NewObjectID().Hex()
	w = env.do(t, http.MethodPost, "/api/tours/"+absent+"/courses", gin.H{
		"name":        "CS101",
		"description": "intro",
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "College/tour not found", decodeBody(t, w)["message"])

	// Neither attempt created a document.
	courses, err := env.courses.ListByTour(context.Background(), absent)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCreateAndListCourses(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "kesav", "k@x.com", "secret1")
	tourID := env.createTour(t, token, gin.H{"name": "MIT", "description": "d"})

	w := env.do(t, http.MethodPost, "/api/tours/"+tourID+"/courses", gin.H{
		"name":        "CS101",
		"description": "intro",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "CS101", body["name"])
	assert.Equal(t, tourID, body["tourId"])

	w = env.do(t, http.MethodGet, "/api/tours/"+tourID+"/courses", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)
}

func TestDeleteCourseChecksParentReference(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "kesav", "k@x.com", "secret1")
	tourA := env.createTour(t, token, gin.H{"name": "A", "description": "d"})
	tourB := env.createTour(t, token, gin.H{"name": "B", "description": "d"})
	courseID := env.createCourse(t, tourA)

	// The stored parent is tourA, not tourB.
	w := env.do(t, http.MethodDelete, "/api/tours/"+tourB+"/courses/"+courseID, nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Course does not belong to this college", decodeBody(t, w)["message"])

	courses, err := env.courses.ListByTour(context.Background(), tourA)
	require.NoError(t, err)
	assert.Len(t, courses, 1, "mismatched delete must not remove the course")

	w = env.do(t, http.MethodDelete, "/api/tours/"+tourA+"/courses/"+courseID, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	courses, err = env.courses.ListByTour(context.Background(), tourA)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestDeleteCourseErrors(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "kesav", "k@x.com", "secret1")
	tourID := env.createTour(t, token, gin.H{"name": "A", "description": "d"})
	courseID := env.createCourse(t, tourID)

	w := env.do(t, http.MethodDelete, "/api/tours/"+tourID+"/courses/"+courseID, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodDelete, "/api/tours/"+tourID+"/courses/bogus", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid ID format", decodeBody(t, w)["message"])

	w = env.do(t, http.MethodDelete, "/api/tours/"+tourID+"/courses/"+primitive.NewObjectID().Hex(), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Course not found", decodeBody(t, w)["message"])
}
