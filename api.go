package usegrantmcp

import (
	"context"

	"github.com/usegrant/usegrant-mcp/usegrant"
)

// API is the set of UseGrant operations the catalog forwards to.
// *usegrant.Client implements it.
type API interface {
	ListProviders(ctx context.Context) ([]usegrant.Provider, error)
	CreateProvider(ctx context.Context, request usegrant.CreateProviderRequest) (*usegrant.Provider, error)
	GetProvider(ctx context.Context, providerID string) (*usegrant.Provider, error)
	DeleteProvider(ctx context.Context, providerID string) error

	ListClients(ctx context.Context, providerID string) ([]usegrant.OAuthClient, error)
	CreateClient(ctx context.Context, providerID string, request usegrant.CreateClientRequest) (*usegrant.OAuthClient, error)
	GetClient(ctx context.Context, providerID, clientID string) (*usegrant.OAuthClient, error)
	DeleteClient(ctx context.Context, providerID, clientID string) error

	CreateToken(ctx context.Context, providerID, clientID string, request usegrant.CreateTokenRequest) (*usegrant.AccessToken, error)

	ListDomains(ctx context.Context, providerID string) ([]usegrant.Domain, error)
	CreateDomain(ctx context.Context, providerID string, request usegrant.CreateDomainRequest) (*usegrant.Domain, error)
	GetDomain(ctx context.Context, providerID, domainID string) (*usegrant.Domain, error)
	DeleteDomain(ctx context.Context, providerID, domainID string) error

	ListTenants(ctx context.Context) ([]usegrant.Tenant, error)
	CreateTenant(ctx context.Context, request usegrant.CreateTenantRequest) (*usegrant.Tenant, error)
	GetTenant(ctx context.Context, tenantID string) (*usegrant.Tenant, error)
	DeleteTenant(ctx context.Context, tenantID string) error

	ListTenantProviders(ctx context.Context, tenantID string) ([]usegrant.TenantProvider, error)
	CreateTenantProvider(ctx context.Context, tenantID string, request usegrant.CreateTenantProviderRequest) (*usegrant.TenantProvider, error)
	GetTenantProvider(ctx context.Context, tenantID, providerID string) (*usegrant.TenantProvider, error)
	DeleteTenantProvider(ctx context.Context, tenantID, providerID string) error

	ListTenantProviderPolicies(ctx context.Context, tenantID, providerID string) ([]usegrant.TenantProviderPolicy, error)
	CreateTenantProviderPolicy(ctx context.Context, tenantID, providerID string, request usegrant.CreateTenantProviderPolicyRequest) (*usegrant.TenantProviderPolicy, error)
	GetTenantProviderPolicy(ctx context.Context, tenantID, providerID, policyID string) (*usegrant.TenantProviderPolicy, error)
	DeleteTenantProviderPolicy(ctx context.Context, tenantID, providerID, policyID string) error

	ValidateToken(ctx context.Context, tenantID, accessToken string) (*usegrant.TokenValidation, error)
}

var _ API = (*usegrant.Client)(nil)
