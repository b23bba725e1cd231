package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/routine"
	"daily-task-manager/pkg/log"
)

type stubUseCase struct {
	out routine.GenerateOutput
	err error
	got routine.GenerateInput
}

func (s *stubUseCase) Generate(ctx context.Context, in routine.GenerateInput) (routine.GenerateOutput, error) {
	s.got = in
	return s.out, s.err
}

func serve(uc routine.UseCase, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
	return w
}

func TestGenerate(t *testing.T) {
	due, rid := "2025-11-19", "r1"
	uc := &stubUseCase{out: routine.GenerateOutput{
		Date:  due,
		Tasks: []model.Task{{ID: "t1", Title: "Stretch", Status: model.TaskStatusTodo, DueDate: &due, RoutineID: &rid}},
	}}

	w := serve(uc, "/api/v1/routines/generate?today=2025-11-19")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "2025-11-19", uc.got.Today)

	var body struct {
		Data generateResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Created)
	require.Len(t, body.Data.Tasks, 1)
	assert.Equal(t, "Stretch", body.Data.Tasks[0].Title)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad date", err: routine.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "store failure", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&stubUseCase{err: tt.err}, "/api/v1/routines/generate")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
