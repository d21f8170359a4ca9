package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "recordkeeper/pkg/domain-errors"
)

type nameRequest struct {
	Name       string `json:"name"`
	normalized bool
}

func (r *nameRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.normalized = true
}

func (r *nameRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type idRequest struct {
	ID string `json:"id"`
}

func (r *idRequest) Validate() error {
	if r.ID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "id is required")
	}
	return nil
}

type DecodeSuite struct {
	suite.Suite
	logger *slog.Logger
	ctx    context.Context
}

func (s *DecodeSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.ctx = context.Background()
}

func TestDecodeSuite(t *testing.T) {
	suite.Run(t, new(DecodeSuite))
}

func (s *DecodeSuite) post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func (s *DecodeSuite) errorBody(w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *DecodeSuite) TestDecodeJSON() {
	s.Run("decodes", func() {
		w := httptest.NewRecorder()
		got, ok := DecodeJSON[nameRequest](w, s.post(`{"name":"x"}`), s.logger, s.ctx, "rid")
		s.True(ok)
		s.Equal("x", got.Name)
	})

	s.Run("malformed body", func() {
		w := httptest.NewRecorder()
		got, ok := DecodeJSON[nameRequest](w, s.post(`{nope`), s.logger, s.ctx, "rid")
		s.False(ok)
		s.Nil(got)
		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("bad_request", s.errorBody(w).Error)
	})

	s.Run("empty body", func() {
		w := httptest.NewRecorder()
		_, ok := DecodeJSON[nameRequest](w, s.post(""), s.logger, s.ctx, "rid")
		s.False(ok)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown field", func() {
		w := httptest.NewRecorder()
		_, ok := DecodeJSON[nameRequest](w, s.post(`{"nmae":"x"}`), s.logger, s.ctx, "rid")
		s.False(ok)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("oversized body", func() {
		w := httptest.NewRecorder()
		r := s.post(`{"name":"` + strings.Repeat("x", 64) + `"}`)
		r.Body = http.MaxBytesReader(w, r.Body, 16)
		_, ok := DecodeJSON[nameRequest](w, r, s.logger, s.ctx, "rid")
		s.False(ok)
		s.Equal("request body too large", s.errorBody(w).Description)
	})
}

func (s *DecodeSuite) TestDecodeAndPrepare() {
	s.Run("normalizes before validating", func() {
		w := httptest.NewRecorder()
		got, ok := DecodeAndPrepare[nameRequest](w, s.post(`{"name":"  x  "}`), s.logger, s.ctx, "rid")
		s.True(ok)
		s.True(got.normalized)
		s.Equal("x", got.Name)
	})

	s.Run("plain validation error becomes validation_error", func() {
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[nameRequest](w, s.post(`{"name":"   "}`), s.logger, s.ctx, "rid")
		s.False(ok)
		s.Equal(http.StatusBadRequest, w.Code)
		resp := s.errorBody(w)
		s.Equal("validation_error", resp.Error)
		s.Equal("name is required", resp.Description)
	})

	s.Run("domain validation error keeps its code", func() {
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[idRequest](w, s.post(`{"id":""}`), s.logger, s.ctx, "rid")
		s.False(ok)
		s.Equal("bad_request", s.errorBody(w).Error)
	})
}
