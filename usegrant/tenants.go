package usegrant

import "context"

// ListTenants returns every tenant visible to the API key.
func (client *Client) ListTenants(ctx context.Context) ([]Tenant, error) {
	var tenants []Tenant
	if err := client.get(ctx, resourcePath("tenants"), &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// CreateTenant creates a tenant.
func (client *Client) CreateTenant(ctx context.Context, request CreateTenantRequest) (*Tenant, error) {
	var tenant Tenant
	if err := client.post(ctx, resourcePath("tenants"), request, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetTenant fetches a tenant by ID.
func (client *Client) GetTenant(ctx context.Context, tenantID string) (*Tenant, error) {
	var tenant Tenant
	if err := client.get(ctx, resourcePath("tenants", tenantID), &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// DeleteTenant deletes a tenant.
func (client *Client) DeleteTenant(ctx context.Context, tenantID string) error {
	return client.delete(ctx, resourcePath("tenants", tenantID))
}

// ListTenantProviders returns the providers a tenant trusts.
func (client *Client) ListTenantProviders(ctx context.Context, tenantID string) ([]TenantProvider, error) {
	var providers []TenantProvider
	if err := client.get(ctx, resourcePath("tenants", tenantID, "providers"), &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// CreateTenantProvider adds a provider to a tenant.
func (client *Client) CreateTenantProvider(ctx context.Context, tenantID string, request CreateTenantProviderRequest) (*TenantProvider, error) {
	var provider TenantProvider
	if err := client.post(ctx, resourcePath("tenants", tenantID, "providers"), request, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// GetTenantProvider fetches one of a tenant's providers.
func (client *Client) GetTenantProvider(ctx context.Context, tenantID, providerID string) (*TenantProvider, error) {
	var provider TenantProvider
	if err := client.get(ctx, resourcePath("tenants", tenantID, "providers", providerID), &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// DeleteTenantProvider removes a provider from a tenant.
func (client *Client) DeleteTenantProvider(ctx context.Context, tenantID, providerID string) error {
	return client.delete(ctx, resourcePath("tenants", tenantID, "providers", providerID))
}

// ListTenantProviderPolicies returns the policies attached to a tenant provider.
func (client *Client) ListTenantProviderPolicies(ctx context.Context, tenantID, providerID string) ([]TenantProviderPolicy, error) {
	var policies []TenantProviderPolicy
	path := resourcePath("tenants", tenantID, "providers", providerID, "policies")
	if err := client.get(ctx, path, &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

// CreateTenantProviderPolicy attaches a policy to a tenant provider.
func (client *Client) CreateTenantProviderPolicy(ctx context.Context, tenantID, providerID string, request CreateTenantProviderPolicyRequest) (*TenantProviderPolicy, error) {
	var policy TenantProviderPolicy
	path := resourcePath("tenants", tenantID, "providers", providerID, "policies")
	if err := client.post(ctx, path, request, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// GetTenantProviderPolicy fetches a policy by ID.
func (client *Client) GetTenantProviderPolicy(ctx context.Context, tenantID, providerID, policyID string) (*TenantProviderPolicy, error) {
	var policy TenantProviderPolicy
	path := resourcePath("tenants", tenantID, "providers", providerID, "policies", policyID)
	if err := client.get(ctx, path, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// DeleteTenantProviderPolicy removes a policy from a tenant provider.
func (client *Client) DeleteTenantProviderPolicy(ctx context.Context, tenantID, providerID, policyID string) error {
	return client.delete(ctx, resourcePath("tenants", tenantID, "providers", providerID, "policies", policyID))
}

// ValidateToken checks an access token against a tenant's providers and
// policies. An invalid token is not an error: the result reports Valid
// false.
func (client *Client) ValidateToken(ctx context.Context, tenantID, accessToken string) (*TokenValidation, error) {
	var validation TokenValidation
	path := resourcePath("tenants", tenantID, "tokens", "validate")
	if err := client.post(ctx, path, validateTokenRequest{AccessToken: accessToken}, &validation); err != nil {
		return nil, err
	}
	return &validation, nil
}
