package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/vortexbridge/bridge-core/api/handlers"
	mock_handlers "github.com/vortexbridge/bridge-core/api/handlers/mock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	checker *mock_handlers.MockAvailabilityChecker
	handler *handlers.AvailabilityHandler
}

func TestRunAvailabilityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.checker = mock_handlers.NewMockAvailabilityChecker(ctrl)
	s.handler = handlers.NewAvailabilityHandler(s.checker)
}

func (s *AvailabilityHandlerTestSuite) request(slot string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/relay/slots/"+slot+"/availability", nil)
	req = mux.SetURLVars(req, map[string]string{"slot": slot})
	recorder := httptest.NewRecorder()
	s.handler.HandleRequest(recorder, req)
	return recorder
}

func (s *AvailabilityHandlerTestSuite) Test_HandleRequest_InvalidSlot() {
	recorder := s.request("invalid")

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *AvailabilityHandlerTestSuite) Test_HandleRequest_CheckFails() {
	s.checker.EXPECT().IsAvailable(uint64(100)).Return(false, errors.New("indexer down"))

	recorder := s.request("100")

	s.Equal(http.StatusBadGateway, recorder.Code)
}

func (s *AvailabilityHandlerTestSuite) Test_HandleRequest_Available() {
	s.checker.EXPECT().IsAvailable(uint64(100)).Return(true, nil)

	recorder := s.request("100")

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"available": true}`, recorder.Body.String())
}
