// internal/webutil/request_test.go
package webutil_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"eitango_board/internal/model"
	"eitango_board/internal/webutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string, dst interface{}) error {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))
	return webutil.DecodeAndValidate(r, nil, dst)
}

func TestDecodeAndValidate_UpdateFlagRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "pkeyが数値文字列", body: `{"pkey":"1","flag":"TRUE"}`, wantErr: false},
		{name: "pkeyがJSON数値", body: `{"pkey":1,"flag":"TRUE"}`, wantErr: false},
		{name: "flagがFALSE", body: `{"pkey":"2","flag":"FALSE"}`, wantErr: false},
		{name: "余分なキーは無視する", body: `{"pkey":"1","flag":"TRUE","extra":"x"}`, wantErr: false},
		{name: "pkeyが非数値文字列", body: `{"pkey":"abc","flag":"TRUE"}`, wantErr: true},
		{name: "pkeyがオブジェクト", body: `{"pkey":{"a":1},"flag":"TRUE"}`, wantErr: true},
		{name: "pkeyが真偽値", body: `{"pkey":true,"flag":"TRUE"}`, wantErr: true},
		{name: "pkey欠落", body: `{"flag":"TRUE"}`, wantErr: true},
		{name: "flagが小文字", body: `{"pkey":"1","flag":"true"}`, wantErr: true},
		{name: "flagが先頭だけ大文字", body: `{"pkey":"1","flag":"False"}`, wantErr: true},
		{name: "flagが数値", body: `{"pkey":"1","flag":1}`, wantErr: true},
		{name: "flag欠落", body: `{"pkey":"1"}`, wantErr: true},
		{name: "ボディがJSONでない", body: `pkey=1`, wantErr: true},
		{name: "空ボディ", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req model.UpdateFlagRequest
			err := decode(t, tt.body, &req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrInvalidInput))
			} else {
				require.NoError(t, err)
				require.NotNil(t, req.PKey)
			}
		})
	}
}

func TestDecodeAndValidate_UpdateFlagRequest_Values(t *testing.T) {
	var req model.UpdateFlagRequest
	require.NoError(t, decode(t, `{"pkey":"42","flag":"TRUE"}`, &req))
	assert.Equal(t, model.PKey(42), *req.PKey)
	assert.Equal(t, model.FlagTrue, req.Flag)
}

func TestDecodeAndValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "正常系", body: `{"eng_val":"apple","jap_val":"りんご"}`, wantErr: false},
		{name: "jap_valは空文字でも通る", body: `{"eng_val":"apple","jap_val":""}`, wantErr: false},
		{name: "jap_val欠落", body: `{"eng_val":"apple"}`, wantErr: true},
		{name: "eng_valが空文字", body: `{"eng_val":"","jap_val":"りんご"}`, wantErr: true},
		{name: "eng_val欠落", body: `{"jap_val":"りんご"}`, wantErr: true},
		{name: "jap_valが数値", body: `{"eng_val":"apple","jap_val":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req model.RegisterRequest
			err := decode(t, tt.body, &req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDecodeAndValidate_DeleteRequest(t *testing.T) {
	var req model.DeleteRequest
	require.NoError(t, decode(t, `{"pkey":"7"}`, &req))
	assert.Equal(t, model.PKey(7), *req.PKey)

	var bad model.DeleteRequest
	err := decode(t, `{}`, &bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}
