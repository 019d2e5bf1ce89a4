package usegrantmcp

import (
	"context"

	"github.com/usegrant/usegrant-mcp/usegrant"
)

func (c catalog) listProviders(ctx context.Context, _ NoArgs) (string, error) {
	providers, err := c.api.ListProviders(ctx)
	if err != nil {
		return "", err
	}
	return jsonText(providers)
}

func (c catalog) createProvider(ctx context.Context, args usegrant.CreateProviderRequest) (string, error) {
	provider, err := c.api.CreateProvider(ctx, args)
	if err != nil {
		return "", err
	}
	return jsonText(provider)
}

func (c catalog) getProvider(ctx context.Context, args ProviderIDArgs) (string, error) {
	provider, err := c.api.GetProvider(ctx, args.ID)
	if err != nil {
		return "", err
	}
	return jsonText(provider)
}

func (c catalog) deleteProvider(ctx context.Context, args ProviderIDArgs) (string, error) {
	if err := c.api.DeleteProvider(ctx, args.ID); err != nil {
		return "", err
	}
	return deletedText("Provider", args.ID), nil
}

func (c catalog) listClients(ctx context.Context, args ProviderArgs) (string, error) {
	clients, err := c.api.ListClients(ctx, args.ProviderID)
	if err != nil {
		return "", err
	}
	return jsonText(clients)
}

func (c catalog) createClient(ctx context.Context, args CreateClientArgs) (string, error) {
	client, err := c.api.CreateClient(ctx, args.ProviderID, args.Request())
	if err != nil {
		return "", err
	}
	return jsonText(client)
}

func (c catalog) getClient(ctx context.Context, args ClientArgs) (string, error) {
	client, err := c.api.GetClient(ctx, args.ProviderID, args.ClientID)
	if err != nil {
		return "", err
	}
	return jsonText(client)
}

func (c catalog) deleteClient(ctx context.Context, args ClientArgs) (string, error) {
	if err := c.api.DeleteClient(ctx, args.ProviderID, args.ClientID); err != nil {
		return "", err
	}
	return deletedText("Client", args.ClientID), nil
}

func (c catalog) createAccessToken(ctx context.Context, args CreateAccessTokenArgs) (string, error) {
	token, err := c.api.CreateToken(ctx, args.ProviderID, args.ClientID, args.Request())
	if err != nil {
		return "", err
	}
	return jsonText(token)
}

func (c catalog) listDomains(ctx context.Context, args ProviderArgs) (string, error) {
	domains, err := c.api.ListDomains(ctx, args.ProviderID)
	if err != nil {
		return "", err
	}
	return jsonText(domains)
}

func (c catalog) createDomain(ctx context.Context, args CreateDomainArgs) (string, error) {
	domain, err := c.api.CreateDomain(ctx, args.ProviderID, args.Request())
	if err != nil {
		return "", err
	}
	return jsonText(domain)
}

func (c catalog) getDomain(ctx context.Context, args DomainArgs) (string, error) {
	domain, err := c.api.GetDomain(ctx, args.ProviderID, args.DomainID)
	if err != nil {
		return "", err
	}
	return jsonText(domain)
}

func (c catalog) deleteDomain(ctx context.Context, args DomainArgs) (string, error) {
	if err := c.api.DeleteDomain(ctx, args.ProviderID, args.DomainID); err != nil {
		return "", err
	}
	return deletedText("Domain", args.DomainID), nil
}
