package homebrew

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockhomebrew -source=time_provider.go

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// RealTimeProvider returns a provider backed by the system clock
func RealTimeProvider() TimeProvider {
	return realTimeProvider{}
}
