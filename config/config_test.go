package config

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	cfg := map[string]string{
		"PORT":    "9090",
		"BAD_INT": "nine",
		"DEBUG":   "true",
		"EMPTY":   "",
		"ORIGINS": "http://a.test, ,http://b.test",
	}

	assert.Equal(t, "9090", GetString(cfg, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(cfg, "MISSING", "8080"))
	assert.Equal(t, "fallback", GetString(cfg, "EMPTY", "fallback"))
	assert.Equal(t, "x", GetString(nil, "PORT", "x"))

	assert.Equal(t, 9090, GetInt(cfg, "PORT", 1))
	assert.Equal(t, 1, GetInt(cfg, "BAD_INT", 1))
	assert.Equal(t, 1, GetInt(nil, "PORT", 1))

	assert.True(t, GetBool(cfg, "DEBUG", false))
	assert.False(t, GetBool(cfg, "PORT", false))
	assert.True(t, GetBool(cfg, "MISSING", true))

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetList(cfg, "ORIGINS"))
	assert.Nil(t, GetList(cfg, "MISSING"))
}

func TestNew_ReadsEnvironment(t *testing.T) {
	t.Setenv("EMP_CLASSROOMS_TEST_KEY", "a=b")
	cfg := New()
	assert.Equal(t, "a=b", cfg["EMP_CLASSROOMS_TEST_KEY"])
}

type fakeSSM struct {
	pages [][]types.Parameter
	calls int
	err   error
}

func (f *fakeSSM) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.calls]
	f.calls++

	out := &ssm.GetParametersByPathOutput{Parameters: page}
	if f.calls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestOverlayParameters(t *testing.T) {
	client := &fakeSSM{pages: [][]types.Parameter{
		{{Name: aws.String("/emp/prod/DONORSCHOOSE_API_KEY"), Value: aws.String("secret")}},
		{{Name: aws.String("/emp/prod/PORT"), Value: aws.String("7000")}},
	}}
	cfg := map[string]string{"PORT": "8080", "OTHER": "kept"}

	require.NoError(t, overlayParameters(context.Background(), client, "/emp/prod", cfg))

	assert.Equal(t, 2, client.calls)
	assert.Equal(t, "secret", cfg[KeyDonorsChooseAPIKey])
	assert.Equal(t, "7000", cfg[KeyPort])
	assert.Equal(t, "kept", cfg["OTHER"])
}

func TestOverlayParameters_Error(t *testing.T) {
	client := &fakeSSM{err: errors.New("access denied")}
	err := overlayParameters(context.Background(), client, "/emp", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestLoadSSMParameters_NoPrefix(t *testing.T) {
	cfg := map[string]string{}
	require.NoError(t, LoadSSMParameters(context.Background(), cfg))
	assert.Empty(t, cfg)
}
