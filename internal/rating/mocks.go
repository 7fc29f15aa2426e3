package rating

import (
	"github.com/stretchr/testify/mock"
)

type StoreMock struct {
	mock.Mock
}

func (m *StoreMock) FindByUserAndThumbnail(userID, thumbnailID uint) (*Rating, error) {
	args := m.Called(userID, thumbnailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Rating), args.Error(1)
}

func (m *StoreMock) Save(r *Rating) error {
	args := m.Called(r)
	return args.Error(0)
}

func (m *StoreMock) AverageForThumbnail(thumbnailID uint) (*float64, error) {
	args := m.Called(thumbnailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}
