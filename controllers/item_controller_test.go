package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsDemoResource(t *testing.T) {
	r := setupServer(t)

	// No token needed for the demo resource.
	w := get(r, "/api/items", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var items []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 4)

	w = doJSON(r, http.MethodPost, "/api/items", "", `{"name":"Item viisi"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Item struct {
			ID int `json:"id"`
		} `json:"item"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/items/%d", created.Item.ID)

	w = doJSON(r, http.MethodPut, path, "", `{"name":"renamed"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, path, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, path, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/api/items", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
