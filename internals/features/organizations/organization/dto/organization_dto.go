package dto

type CreateOrganizationDTO struct {
	OrganizationName string `json:"organization_name" validate:"required,min=3,max=100"`
	OrganizationSlug string `json:"organization_slug" validate:"omitempty,min=3,max=100"`
}

type UpdateOrganizationDTO struct {
	OrganizationName               *string `json:"organization_name" validate:"omitempty,min=3,max=100"`
	OrganizationSubscriptionPlan   *string `json:"organization_subscription_plan" validate:"omitempty,oneof=free basic pro"`
	OrganizationSubscriptionStatus *string `json:"organization_subscription_status" validate:"omitempty,oneof=active past_due canceled"`
}
