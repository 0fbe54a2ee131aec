// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

type staticCredential struct {
	token  string
	scopes []string
}

func (s *staticCredential) GetToken(_ context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	s.scopes = opts.Scopes
	return azcore.AccessToken{Token: s.token, ExpiresOn: time.Now().Add(time.Hour)}, nil
}

func signedToken(t *testing.T, claims AzureADClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestParseClaims(t *testing.T) {
	testCases := []struct {
		name        string
		token       string
		expected    *AzureADClaims
		expectedErr string
	}{
		{
			name:     "tenant and object",
			token:    signedToken(t, AzureADClaims{TenantID: "tenant", ObjectID: "object"}),
			expected: &AzureADClaims{TenantID: "tenant", ObjectID: "object"},
		},
		{
			name:        "missing tenant",
			token:       signedToken(t, AzureADClaims{ObjectID: "object"}),
			expectedErr: "token does not contain 'tid' claim",
		},
		{
			name:        "garbage",
			token:       "not-a-token",
			expectedErr: "failed to parse token",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := ParseClaims(tc.token)
			if tc.expectedErr != "" {
				require.ErrorContains(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected.TenantID, claims.TenantID)
			assert.Equal(t, tc.expected.ObjectID, claims.ObjectID)
		})
	}
}

func TestSignedInPrincipal(t *testing.T) {
	cred := &staticCredential{token: signedToken(t, AzureADClaims{TenantID: "tenant", ObjectID: "object"})}

	p, err := SignedInPrincipal(context.Background(), cred, cloud.AzureChina)
	require.NoError(t, err)
	assert.Equal(t, &Principal{TenantID: "tenant", ObjectID: "object"}, p)
	assert.Equal(t, []string{"https://management.core.chinacloudapi.cn/.default"}, cred.scopes)
}

func TestSignedInPrincipalWithoutAudience(t *testing.T) {
	cred := &staticCredential{token: signedToken(t, AzureADClaims{TenantID: "tenant"})}

	_, err := SignedInPrincipal(context.Background(), cred, cloud.Configuration{ActiveDirectoryAuthorityHost: "https://login.example.com/"})
	require.EqualError(t, err, "cloud configuration has no resource manager audience")
	assert.Empty(t, cred.scopes)
}
