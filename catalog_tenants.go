package usegrantmcp

import (
	"context"

	"github.com/usegrant/usegrant-mcp/usegrant"
)

func (c catalog) listTenants(ctx context.Context, _ NoArgs) (string, error) {
	tenants, err := c.api.ListTenants(ctx)
	if err != nil {
		return "", err
	}
	return jsonText(tenants)
}

func (c catalog) createTenant(ctx context.Context, args usegrant.CreateTenantRequest) (string, error) {
	tenant, err := c.api.CreateTenant(ctx, args)
	if err != nil {
		return "", err
	}
	return jsonText(tenant)
}

func (c catalog) getTenant(ctx context.Context, args TenantIDArgs) (string, error) {
	tenant, err := c.api.GetTenant(ctx, args.ID)
	if err != nil {
		return "", err
	}
	return jsonText(tenant)
}

func (c catalog) deleteTenant(ctx context.Context, args TenantIDArgs) (string, error) {
	if err := c.api.DeleteTenant(ctx, args.ID); err != nil {
		return "", err
	}
	return deletedText("Tenant", args.ID), nil
}

func (c catalog) listTenantProviders(ctx context.Context, args TenantArgs) (string, error) {
	providers, err := c.api.ListTenantProviders(ctx, args.TenantID)
	if err != nil {
		return "", err
	}
	return jsonText(providers)
}

func (c catalog) createTenantProvider(ctx context.Context, args CreateTenantProviderArgs) (string, error) {
	provider, err := c.api.CreateTenantProvider(ctx, args.TenantID, args.Request())
	if err != nil {
		return "", err
	}
	return jsonText(provider)
}

func (c catalog) getTenantProvider(ctx context.Context, args TenantProviderArgs) (string, error) {
	provider, err := c.api.GetTenantProvider(ctx, args.TenantID, args.ProviderID)
	if err != nil {
		return "", err
	}
	return jsonText(provider)
}

// deleteTenantProvider confirms with "Provider", matching delete_provider.
func (c catalog) deleteTenantProvider(ctx context.Context, args TenantProviderArgs) (string, error) {
	if err := c.api.DeleteTenantProvider(ctx, args.TenantID, args.ProviderID); err != nil {
		return "", err
	}
	return deletedText("Provider", args.ProviderID), nil
}

func (c catalog) listTenantProviderPolicies(ctx context.Context, args TenantProviderArgs) (string, error) {
	policies, err := c.api.ListTenantProviderPolicies(ctx, args.TenantID, args.ProviderID)
	if err != nil {
		return "", err
	}
	return jsonText(policies)
}

func (c catalog) createTenantProviderPolicy(ctx context.Context, args CreateTenantProviderPolicyArgs) (string, error) {
	policy, err := c.api.CreateTenantProviderPolicy(ctx, args.TenantID, args.ProviderID, args.Request())
	if err != nil {
		return "", err
	}
	return jsonText(policy)
}

func (c catalog) getTenantProviderPolicy(ctx context.Context, args TenantProviderPolicyArgs) (string, error) {
	policy, err := c.api.GetTenantProviderPolicy(ctx, args.TenantID, args.ProviderID, args.PolicyID)
	if err != nil {
		return "", err
	}
	return jsonText(policy)
}

func (c catalog) deleteTenantProviderPolicy(ctx context.Context, args TenantProviderPolicyArgs) (string, error) {
	if err := c.api.DeleteTenantProviderPolicy(ctx, args.TenantID, args.ProviderID, args.PolicyID); err != nil {
		return "", err
	}
	return deletedText("Policy", args.PolicyID), nil
}

func (c catalog) validateAccessToken(ctx context.Context, args ValidateAccessTokenArgs) (string, error) {
	validation, err := c.api.ValidateToken(ctx, args.TenantID, args.AccessToken)
	if err != nil {
		return "", err
	}
	return jsonText(validation)
}
