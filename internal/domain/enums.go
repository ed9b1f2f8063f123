package domain

// UserRole defines the portal role of a user.
type UserRole string

const (
	RoleNIC  UserRole = "nic"
	RoleDMMU UserRole = "dmmu"
	RoleBMMU UserRole = "bmmu"
	RoleCLF  UserRole = "clf"
	RoleVO   UserRole = "vo"
	RoleSHG  UserRole = "shg"
)

// ValidUserRoles is the set of assignable roles.
var ValidUserRoles = map[UserRole]bool{
	RoleNIC:  true,
	RoleDMMU: true,
	RoleBMMU: true,
	RoleCLF:  true,
	RoleVO:   true,
	RoleSHG:  true,
}

// HomeRoutes maps each role to the dashboard route the client lands on after login.
var HomeRoutes = map[UserRole]string{
	RoleNIC:  "/nic",
	RoleDMMU: "/dmmu",
	RoleBMMU: "/bmmu",
	RoleCLF:  "/clf",
	RoleVO:   "/vo",
	RoleSHG:  "/shg",
}

// ManagerRoles may create and edit organizations and products.
var ManagerRoles = []UserRole{RoleNIC, RoleDMMU, RoleBMMU}

// OrganizationType is the tier of a community organization.
type OrganizationType string

const (
	OrgTypeCLF OrganizationType = "clf"
	OrgTypeVO  OrganizationType = "vo"
	OrgTypeSHG OrganizationType = "shg"
)

// ValidOrganizationTypes is the set of accepted organization types.
var ValidOrganizationTypes = map[OrganizationType]bool{
	OrgTypeCLF: true,
	OrgTypeVO:  true,
	OrgTypeSHG: true,
}

// ReportFormat is the file format of an exported report.
type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ReportContentTypes maps report formats to their MIME type.
var ReportContentTypes = map[ReportFormat]string{
	ReportFormatCSV:  "text/csv; charset=utf-8",
	ReportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}
