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
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	_ "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm" // registers the resource manager audiences on the well-known clouds
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// AzureADClaims are the token claims identifying the signed in principal.
type AzureADClaims struct {
	jwt.RegisteredClaims
	AppID    string `json:"appid"`
	TenantID string `json:"tid"`
	ObjectID string `json:"oid"`
}

// Principal is the signed in identity.
type Principal struct {
	TenantID string
	ObjectID string
}

// SignedInPrincipal requests an ARM token and reads the tenant and object id
// from its claims. The token is not verified.
func SignedInPrincipal(ctx context.Context, credential azcore.TokenCredential, cfg cloud.Configuration) (*Principal, error) {
	audience := cfg.Services[cloud.ResourceManager].Audience
	if audience == "" {
		return nil, fmt.Errorf("cloud configuration has no resource manager audience")
	}
	token, err := credential.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{audience + "/.default"}})
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	claims, err := ParseClaims(token.Token)
	if err != nil {
		return nil, err
	}
	return &Principal{TenantID: claims.TenantID, ObjectID: claims.ObjectID}, nil
}

// ParseClaims parses a token without verifying it. The tid claim is required.
func ParseClaims(tokenString string) (*AzureADClaims, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, _, err := parser.ParseUnverified(tokenString, &AzureADClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := token.Claims.(*AzureADClaims)
	if !ok {
		return nil, fmt.Errorf("failed to cast claims to AzureADClaims")
	}
	if claims.TenantID == "" {
		return nil, fmt.Errorf("token does not contain 'tid' claim")
	}
	return claims, nil
}
