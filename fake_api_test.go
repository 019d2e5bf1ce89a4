package usegrantmcp

import (
	"context"
	"sync"

	"github.com/usegrant/usegrant-mcp/usegrant"
)

// call records one API invocation: the method name, its positional
// identifiers and the payload, if any.
type call struct {
	method  string
	ids     []string
	payload any
}

// fakeAPI returns fixed records and records every call. A non-nil err is
// returned from every method instead.
type fakeAPI struct {
	mu    sync.Mutex
	calls []call
	err   error

	providers  []usegrant.Provider
	provider   *usegrant.Provider
	clients    []usegrant.OAuthClient
	client     *usegrant.OAuthClient
	token      *usegrant.AccessToken
	domains    []usegrant.Domain
	domain     *usegrant.Domain
	tenants    []usegrant.Tenant
	tenant     *usegrant.Tenant
	tproviders []usegrant.TenantProvider
	tprovider  *usegrant.TenantProvider
	policies   []usegrant.TenantProviderPolicy
	policy     *usegrant.TenantProviderPolicy
	validation *usegrant.TokenValidation
}

func (f *fakeAPI) record(method string, payload any, ids ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method: method, ids: ids, payload: payload})
	return f.err
}

func (f *fakeAPI) lastCall() call {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeAPI) ListProviders(ctx context.Context) ([]usegrant.Provider, error) {
	if err := f.record("ListProviders", nil); err != nil {
		return nil, err
	}
	return f.providers, nil
}

func (f *fakeAPI) CreateProvider(ctx context.Context, request usegrant.CreateProviderRequest) (*usegrant.Provider, error) {
	if err := f.record("CreateProvider", request); err != nil {
		return nil, err
	}
	return f.provider, nil
}

func (f *fakeAPI) GetProvider(ctx context.Context, providerID string) (*usegrant.Provider, error) {
	if err := f.record("GetProvider", nil, providerID); err != nil {
		return nil, err
	}
	return f.provider, nil
}

func (f *fakeAPI) DeleteProvider(ctx context.Context, providerID string) error {
	return f.record("DeleteProvider", nil, providerID)
}

func (f *fakeAPI) ListClients(ctx context.Context, providerID string) ([]usegrant.OAuthClient, error) {
	if err := f.record("ListClients", nil, providerID); err != nil {
		return nil, err
	}
	return f.clients, nil
}

func (f *fakeAPI) CreateClient(ctx context.Context, providerID string, request usegrant.CreateClientRequest) (*usegrant.OAuthClient, error) {
	if err := f.record("CreateClient", request, providerID); err != nil {
		return nil, err
	}
	return f.client, nil
}

func (f *fakeAPI) GetClient(ctx context.Context, providerID, clientID string) (*usegrant.OAuthClient, error) {
	if err := f.record("GetClient", nil, providerID, clientID); err != nil {
		return nil, err
	}
	return f.client, nil
}

func (f *fakeAPI) DeleteClient(ctx context.Context, providerID, clientID string) error {
	return f.record("DeleteClient", nil, providerID, clientID)
}

func (f *fakeAPI) CreateToken(ctx context.Context, providerID, clientID string, request usegrant.CreateTokenRequest) (*usegrant.AccessToken, error) {
	if err := f.record("CreateToken", request, providerID, clientID); err != nil {
		return nil, err
	}
	return f.token, nil
}

func (f *fakeAPI) ListDomains(ctx context.Context, providerID string) ([]usegrant.Domain, error) {
	if err := f.record("ListDomains", nil, providerID); err != nil {
		return nil, err
	}
	return f.domains, nil
}

func (f *fakeAPI) CreateDomain(ctx context.Context, providerID string, request usegrant.CreateDomainRequest) (*usegrant.Domain, error) {
	if err := f.record("CreateDomain", request, providerID); err != nil {
		return nil, err
	}
	return f.domain, nil
}

func (f *fakeAPI) GetDomain(ctx context.Context, providerID, domainID string) (*usegrant.Domain, error) {
	if err := f.record("GetDomain", nil, providerID, domainID); err != nil {
		return nil, err
	}
	return f.domain, nil
}

func (f *fakeAPI) DeleteDomain(ctx context.Context, providerID, domainID string) error {
	return f.record("DeleteDomain", nil, providerID, domainID)
}

func (f *fakeAPI) ListTenants(ctx context.Context) ([]usegrant.Tenant, error) {
	if err := f.record("ListTenants", nil); err != nil {
		return nil, err
	}
	return f.tenants, nil
}

func (f *fakeAPI) CreateTenant(ctx context.Context, request usegrant.CreateTenantRequest) (*usegrant.Tenant, error) {
	if err := f.record("CreateTenant", request); err != nil {
		return nil, err
	}
	return f.tenant, nil
}

func (f *fakeAPI) GetTenant(ctx context.Context, tenantID string) (*usegrant.Tenant, error) {
	if err := f.record("GetTenant", nil, tenantID); err != nil {
		return nil, err
	}
	return f.tenant, nil
}

func (f *fakeAPI) DeleteTenant(ctx context.Context, tenantID string) error {
	return f.record("DeleteTenant", nil, tenantID)
}

func (f *fakeAPI) ListTenantProviders(ctx context.Context, tenantID string) ([]usegrant.TenantProvider, error) {
	if err := f.record("ListTenantProviders", nil, tenantID); err != nil {
		return nil, err
	}
	return f.tproviders, nil
}

func (f *fakeAPI) CreateTenantProvider(ctx context.Context, tenantID string, request usegrant.CreateTenantProviderRequest) (*usegrant.TenantProvider, error) {
	if err := f.record("CreateTenantProvider", request, tenantID); err != nil {
		return nil, err
	}
	return f.tprovider, nil
}

func (f *fakeAPI) GetTenantProvider(ctx context.Context, tenantID, providerID string) (*usegrant.TenantProvider, error) {
	if err := f.record("GetTenantProvider", nil, tenantID, providerID); err != nil {
		return nil, err
	}
	return f.tprovider, nil
}

func (f *fakeAPI) DeleteTenantProvider(ctx context.Context, tenantID, providerID string) error {
	return f.record("DeleteTenantProvider", nil, tenantID, providerID)
}

func (f *fakeAPI) ListTenantProviderPolicies(ctx context.Context, tenantID, providerID string) ([]usegrant.TenantProviderPolicy, error) {
	if err := f.record("ListTenantProviderPolicies", nil, tenantID, providerID); err != nil {
		return nil, err
	}
	return f.policies, nil
}

func (f *fakeAPI) CreateTenantProviderPolicy(ctx context.Context, tenantID, providerID string, request usegrant.CreateTenantProviderPolicyRequest) (*usegrant.TenantProviderPolicy, error) {
	if err := f.record("CreateTenantProviderPolicy", request, tenantID, providerID); err != nil {
		return nil, err
	}
	return f.policy, nil
}

func (f *fakeAPI) GetTenantProviderPolicy(ctx context.Context, tenantID, providerID, policyID string) (*usegrant.TenantProviderPolicy, error) {
	if err := f.record("GetTenantProviderPolicy", nil, tenantID, providerID, policyID); err != nil {
		return nil, err
	}
	return f.policy, nil
}

func (f *fakeAPI) DeleteTenantProviderPolicy(ctx context.Context, tenantID, providerID, policyID string) error {
	return f.record("DeleteTenantProviderPolicy", nil, tenantID, providerID, policyID)
}

func (f *fakeAPI) ValidateToken(ctx context.Context, tenantID, accessToken string) (*usegrant.TokenValidation, error) {
	if err := f.record("ValidateToken", nil, tenantID, accessToken); err != nil {
		return nil, err
	}
	return f.validation, nil
}

var _ API = (*fakeAPI)(nil)
