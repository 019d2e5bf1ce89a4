package usegrant

import "context"

// ListProviders returns every provider visible to the API key.
func (client *Client) ListProviders(ctx context.Context) ([]Provider, error) {
	var providers []Provider
	if err := client.get(ctx, resourcePath("providers"), &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// CreateProvider creates a provider.
func (client *Client) CreateProvider(ctx context.Context, request CreateProviderRequest) (*Provider, error) {
	var provider Provider
	if err := client.post(ctx, resourcePath("providers"), request, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// GetProvider fetches a provider by ID.
func (client *Client) GetProvider(ctx context.Context, providerID string) (*Provider, error) {
	var provider Provider
	if err := client.get(ctx, resourcePath("providers", providerID), &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// DeleteProvider deletes a provider.
func (client *Client) DeleteProvider(ctx context.Context, providerID string) error {
	return client.delete(ctx, resourcePath("providers", providerID))
}

// ListClients returns the clients registered under a provider.
func (client *Client) ListClients(ctx context.Context, providerID string) ([]OAuthClient, error) {
	var clients []OAuthClient
	if err := client.get(ctx, resourcePath("providers", providerID, "clients"), &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// CreateClient registers a client under a provider.
func (client *Client) CreateClient(ctx context.Context, providerID string, request CreateClientRequest) (*OAuthClient, error) {
	var created OAuthClient
	if err := client.post(ctx, resourcePath("providers", providerID, "clients"), request, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetClient fetches a client by provider and client ID.
func (client *Client) GetClient(ctx context.Context, providerID, clientID string) (*OAuthClient, error) {
	var found OAuthClient
	if err := client.get(ctx, resourcePath("providers", providerID, "clients", clientID), &found); err != nil {
		return nil, err
	}
	return &found, nil
}

// DeleteClient removes a client from a provider.
func (client *Client) DeleteClient(ctx context.Context, providerID, clientID string) error {
	return client.delete(ctx, resourcePath("providers", providerID, "clients", clientID))
}

// CreateToken issues an access token for a client.
func (client *Client) CreateToken(ctx context.Context, providerID, clientID string, request CreateTokenRequest) (*AccessToken, error) {
	var token AccessToken
	path := resourcePath("providers", providerID, "clients", clientID, "tokens")
	if err := client.post(ctx, path, request, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// ListDomains returns the domains attached to a provider.
func (client *Client) ListDomains(ctx context.Context, providerID string) ([]Domain, error) {
	var domains []Domain
	if err := client.get(ctx, resourcePath("providers", providerID, "domains"), &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// CreateDomain attaches a domain to a provider.
func (client *Client) CreateDomain(ctx context.Context, providerID string, request CreateDomainRequest) (*Domain, error) {
	var domain Domain
	if err := client.post(ctx, resourcePath("providers", providerID, "domains"), request, &domain); err != nil {
		return nil, err
	}
	return &domain, nil
}

// GetDomain fetches a provider's domain by ID.
func (client *Client) GetDomain(ctx context.Context, providerID, domainID string) (*Domain, error) {
	var domain Domain
	if err := client.get(ctx, resourcePath("providers", providerID, "domains", domainID), &domain); err != nil {
		return nil, err
	}
	return &domain, nil
}

// DeleteDomain detaches a domain from a provider.
func (client *Client) DeleteDomain(ctx context.Context, providerID, domainID string) error {
	return client.delete(ctx, resourcePath("providers", providerID, "domains", domainID))
}
