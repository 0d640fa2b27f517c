package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/coindash/config"
)

func TestValidateAddr(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: ":8080"},
		{in: "127.0.0.1:443"},
		{in: "", wantErr: true},
		{in: "8080", wantErr: true},
		{in: ":http", wantErr: true},
		{in: ":70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateAddr(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateTopN(t *testing.T) {
	assert.NoError(t, validateTopN("5"))
	assert.NoError(t, validateTopN(" 250 "))
	assert.Error(t, validateTopN("0"))
	assert.Error(t, validateTopN("251"))
	assert.Error(t, validateTopN("five"))
}

func TestValidateBaseURL(t *testing.T) {
	assert.NoError(t, validateBaseURL("https://api.coingecko.com/api/v3"))
	assert.NoError(t, validateBaseURL("http://localhost:8081"))
	assert.Error(t, validateBaseURL("api.coingecko.com"))
	assert.Error(t, validateBaseURL("ftp://example.com"))
}

func TestRender(t *testing.T) {
	answers := defaultAnswers()
	answers.TopN = "10"
	answers.DefaultDays = "90"
	answers.APIBaseURL = "https://pro-api.coingecko.com/api/v3/"
	answers.AutoTLS = true
	answers.Domains = "dash.example.com, , www.dash.example.com"

	data, err := Render(answers)
	require.NoError(t, err)

	var tmp config.ConfigTmp
	require.NoError(t, yaml.Unmarshal(data, &tmp))
	assert.Equal(t, ":8080", tmp.Addr)
	assert.Equal(t, "https://pro-api.coingecko.com/api/v3", tmp.APIBaseURL)
	assert.Equal(t, 10, tmp.TopN)
	assert.Equal(t, 90, tmp.DefaultDays)
	assert.True(t, tmp.AutoTLS)
	assert.Equal(t, []string{"dash.example.com", "www.dash.example.com"}, tmp.Domains)
}

func TestRender_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Answers)
	}{
		{name: "top n not a number", modify: func(a *Answers) { a.TopN = "many" }},
		{name: "top n out of range", modify: func(a *Answers) { a.TopN = "0" }},
		{name: "unsupported days", modify: func(a *Answers) { a.DefaultDays = "2" }},
		{name: "tls without domains", modify: func(a *Answers) { a.AutoTLS = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := defaultAnswers()
			tt.modify(&answers)
			_, err := Render(answers)
			assert.Error(t, err)
		})
	}
}
