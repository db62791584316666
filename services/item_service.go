package services

import (
	"sync"

	"github.com/jerekarp/hyte-backend/models"
)

// ItemStore is the in-memory demo resource. Unlike the real resources it
// never touches the database, so it guards its slice with a mutex; the
// store is constructed once and handed to its controller rather than
// living in package state.
type ItemStore struct {
	mu     sync.Mutex
	nextID int
	items  []models.Item
}

func NewItemStore() *ItemStore {
	return &ItemStore{
		nextID: 5,
		items: []models.Item{
			{ID: 1, Name: "Item 1"},
			{ID: 2, Name: "Item 2"},
			{ID: 3, Name: "Item kolme"},
			{ID: 4, Name: "Item neljä"},
		},
	}
}

func (s *ItemStore) List() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ItemStore) Find(id int) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}

func (s *ItemStore) Add(name string) models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := models.Item{ID: s.nextID, Name: name}
	s.nextID++
	s.items = append(s.items, item)
	return item
}

func (s *ItemStore) Update(id int, name string) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Name = name
			return s.items[i], true
		}
	}
	return models.Item{}, false
}

func (s *ItemStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}
