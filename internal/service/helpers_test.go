package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	repoMocks "propdesk/internal/repository/mocks"
)

const (
	cityID     = "0b8a1a52-5d1c-4b7e-9d3e-1f0f7c1a0001"
	districtID = "0b8a1a52-5d1c-4b7e-9d3e-1f0f7c1a0002"
	ownerA     = "0b8a1a52-5d1c-4b7e-9d3e-1f0f7c1a0003"
	ownerB     = "0b8a1a52-5d1c-4b7e-9d3e-1f0f7c1a0004"
	buildingID = "0b8a1a52-5d1c-4b7e-9d3e-1f0f7c1a0005"
	unitID     = "0b8a1a52-5d1c-4b7e-9d3e-1f0f7c1a0006"
	leaseID    = "0b8a1a52-5d1c-4b7e-9d3e-1f0f7c1a0007"
	otherUnit  = "0b8a1a52-5d1c-4b7e-9d3e-1f0f7c1a0008"
)

// fixedNow is 2024-06-15 10:00 UTC.
var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// settingsWith returns a SettingsService backed by a mock that always
// answers with set.
func settingsWith(set model.Settings) (SettingsService, *repoMocks.MockSettingsRepository) {
	repo := new(repoMocks.MockSettingsRepository)
	repo.On("Get", mock.Anything).Return(&set, nil).Maybe()
	return NewSettingsService(repo, nil), repo
}
