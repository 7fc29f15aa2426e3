package thumbnail

import (
	"github.com/stretchr/testify/mock"
)

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) Save(t *Thumbnail) (*Thumbnail, error) {
	args := m.Called(t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Thumbnail), args.Error(1)
}

func (m *RepositoryMock) FindByYoutubeVideoID(videoID string) (*Thumbnail, error) {
	args := m.Called(videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Thumbnail), args.Error(1)
}

func (m *RepositoryMock) FindRandom() (*Thumbnail, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Thumbnail), args.Error(1)
}

func (m *RepositoryMock) FindAllExcept(ids []uint) ([]Thumbnail, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Thumbnail), args.Error(1)
}

func (m *RepositoryMock) Delete(t *Thumbnail) error {
	args := m.Called(t)
	return args.Error(0)
}
