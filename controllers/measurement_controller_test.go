package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasurementLifecycle(t *testing.T) {
	r := setupServer(t)
	owner := tokenFor(t, 17, "johndoe", "regular")

	w := doJSON(r, http.MethodPost, "/api/measurements", owner,
		`{"measurement_type":"Blood pressure","value":120,"unit":"mmHg","notes":"morning reading"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		MeasurementID uint `json:"measurement_id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = get(r, fmt.Sprintf("/api/measurements/%d", resp.MeasurementID), owner)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"measurement_type":"Blood pressure"`)
	assert.Contains(t, w.Body.String(), `"unit":"mmHg"`)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/measurements/%d", resp.MeasurementID), owner,
		`{"value":118.5}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = get(r, fmt.Sprintf("/api/measurements/%d", resp.MeasurementID), owner)
	assert.Contains(t, w.Body.String(), `"value":118.5`)
}

func TestDeleteMeasurementTwiceOverHTTP(t *testing.T) {
	r := setupServer(t)
	owner := tokenFor(t, 17, "johndoe", "regular")

	w := doJSON(r, http.MethodPost, "/api/measurements", owner,
		`{"measurement_type":"Weight","value":70,"unit":"kg"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		MeasurementID uint `json:"measurement_id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	path := fmt.Sprintf("/api/measurements/%d", resp.MeasurementID)

	w = doJSON(r, http.MethodDelete, path, owner, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, path, owner, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMeasurementValidation(t *testing.T) {
	r := setupServer(t)
	owner := tokenFor(t, 17, "johndoe", "regular")

	// value is required.
	w := doJSON(r, http.MethodPost, "/api/measurements", owner,
		`{"measurement_type":"Weight"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// measurement_type too short.
	w = doJSON(r, http.MethodPost, "/api/measurements", owner,
		`{"measurement_type":"ab","value":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unit longer than 10 chars.
	w = doJSON(r, http.MethodPost, "/api/measurements", owner,
		`{"measurement_type":"Weight","value":70,"unit":"kilogrammes"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// user_id in an update body is rejected outright.
	w = doJSON(r, http.MethodPut, "/api/measurements/1", owner,
		`{"user_id":2,"value":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
