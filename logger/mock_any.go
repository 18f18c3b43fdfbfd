package logger

import "go.uber.org/mock/gomock"

// NewAnyLogMock returns a MockLogger accepting any number of Debug, Info and Warn calls.
// Error calls stay unexpected unless the test adds its own expectation.
func NewAnyLogMock(ctrl *gomock.Controller) *MockLogger {
	logMock := NewMockLogger(ctrl)
	logMock.EXPECT().Debug(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logMock.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logMock.EXPECT().Warn(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return logMock
}
