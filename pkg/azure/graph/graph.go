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

// Package graph creates and resolves the directory objects cluster create needs
// when neither a managed identity nor an explicit service principal is used.
package graph

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	auth "github.com/microsoft/kiota-authentication-azure-go"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/microsoftgraph/msgraph-sdk-go/applications"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/microsoftgraph/msgraph-sdk-go/serviceprincipals"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
)

// ServicePrincipal is a freshly created application plus its service principal.
type ServicePrincipal struct {
	AppID    string
	ObjectID string
	Secret   string
	// KeyID identifies the password credential and doubles as the session key
	// recorded on the cluster context.
	KeyID string
}

// Client is the narrow directory surface used by the cluster commands.
//
//go:generate $MOCKGEN -typed -source=graph.go -destination=mock_graph.go -package graph Client
type Client interface {
	// CreateServicePrincipal registers an application named displayName with a
	// password credential and a service principal for it.
	CreateServicePrincipal(ctx context.Context, displayName string, homepage string) (*ServicePrincipal, error)
	// ServicePrincipalObjectID resolves the object id of the service principal of appID.
	ServicePrincipalObjectID(ctx context.Context, appID string) (string, error)
}

// secretLifetime matches the two year default of the portal.
const secretLifetime = 2 * 365 * 24 * time.Hour

// Endpoint returns the Microsoft Graph endpoint of a --cloud value.
func Endpoint(cloudName string) string {
	switch strings.ToLower(cloudName) {
	case strings.ToLower(client.CloudAzureChina):
		return "https://microsoftgraph.chinacloudapi.cn"
	case strings.ToLower(client.CloudAzureUSGovernment):
		return "https://graph.microsoft.us"
	}
	return "https://graph.microsoft.com"
}

type graphClient struct {
	client *msgraphsdk.GraphServiceClient
}

var _ Client = (*graphClient)(nil)

// NewClient builds a Graph client for cloudName on top of credential.
func NewClient(credential azcore.TokenCredential, cloudName string) (Client, error) {
	endpoint := Endpoint(cloudName)
	authProvider, err := auth.NewAzureIdentityAuthenticationProviderWithScopes(credential, []string{endpoint + "/.default"})
	if err != nil {
		return nil, fmt.Errorf("failed to create graph authentication provider: %w", err)
	}
	adapter, err := msgraphsdk.NewGraphRequestAdapter(authProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph request adapter: %w", err)
	}
	adapter.SetBaseUrl(endpoint + "/v1.0")
	return &graphClient{client: msgraphsdk.NewGraphServiceClient(adapter)}, nil
}

func (g *graphClient) CreateServicePrincipal(ctx context.Context, displayName string, homepage string) (*ServicePrincipal, error) {
	app := models.NewApplication()
	app.SetDisplayName(to.Ptr(displayName))
	if homepage != "" {
		web := models.NewWebApplication()
		web.SetHomePageUrl(to.Ptr(homepage))
		app.SetWeb(web)
	}
	created, err := g.client.Applications().Post(ctx, app, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create application %s: %w", displayName, err)
	}
	appObjectID := to.Ptr("")
	if created.GetId() != nil {
		appObjectID = created.GetId()
	}

	cred := models.NewPasswordCredential()
	cred.SetDisplayName(to.Ptr("aksctl"))
	cred.SetEndDateTime(to.Ptr(time.Now().Add(secretLifetime)))
	body := applications.NewItemAddPasswordPostRequestBody()
	body.SetPasswordCredential(cred)
	password, err := g.client.Applications().ByApplicationId(*appObjectID).AddPassword().Post(ctx, body, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to add password to application %s: %w", displayName, err)
	}

	sp := models.NewServicePrincipal()
	sp.SetAppId(created.GetAppId())
	createdSP, err := g.client.ServicePrincipals().Post(ctx, sp, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create service principal for application %s: %w", displayName, err)
	}

	out := &ServicePrincipal{
		AppID:    deref(created.GetAppId()),
		ObjectID: deref(createdSP.GetId()),
		Secret:   deref(password.GetSecretText()),
	}
	if id := password.GetKeyId(); id != nil {
		out.KeyID = id.String()
	}
	return out, nil
}

func (g *graphClient) ServicePrincipalObjectID(ctx context.Context, appID string) (string, error) {
	filter := fmt.Sprintf("appId eq '%s'", appID)
	resp, err := g.client.ServicePrincipals().Get(ctx, &serviceprincipals.ServicePrincipalsRequestBuilderGetRequestConfiguration{
		QueryParameters: &serviceprincipals.ServicePrincipalsRequestBuilderGetQueryParameters{
			Filter: &filter,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up service principal %s: %w", appID, err)
	}
	for _, sp := range resp.GetValue() {
		if id := sp.GetId(); id != nil {
			return *id, nil
		}
	}
	return "", fmt.Errorf("service principal %s not found", appID)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
