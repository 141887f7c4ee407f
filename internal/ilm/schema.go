package ilm

// DatasetKind selects which canonical schema applies to a raw sheet.
type DatasetKind string

const (
	VirtualAccess       DatasetKind = "va"
	TransnationalAccess DatasetKind = "ta"
)

// Source records which collaborator produced a table.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Field is one member of a dataset's fixed canonical schema.
type Field string

// FieldKind declares how raw cells for a field are normalized.
type FieldKind int

const (
	KindText FieldKind = iota
	KindScore
	KindFlag
	KindCategory
	KindDate
	KindCount
)

// Virtual Access canonical fields, in physical sheet column order.
const (
	FieldContact          Field = "contact"
	FieldEmail            Field = "email"
	FieldAffiliation      Field = "affiliation"
	FieldServiceName      Field = "service_name"
	FieldCompliantRI      Field = "compliant_ri"
	FieldImplementation   Field = "implementation_status"
	FieldInstallationID   Field = "installation_id"
	FieldServiceID        Field = "service_id"
	FieldWP               Field = "wp"
	FieldDataRepr         Field = "data_repr"
	FieldResponseFormats  Field = "response_formats"
	FieldLicense          Field = "license"
	FieldMetadataStandard Field = "metadata_standard"
	FieldInstallationURL  Field = "installation_url"
	FieldDomain           Field = "domain"
	FieldCompletenessPct  Field = "completeness_pct"
	FieldServiceRunning   Field = "service_running"
	FieldEndpointURL      Field = "endpoint_url"
	FieldAPIStandard      Field = "api_standard"
	FieldParametrization  Field = "parametrization"
	FieldProvidesData     Field = "provides_data"
	FieldAvailability     Field = "availability"
	FieldLicenseExists    Field = "license_exists"
	FieldFullyDescribed   Field = "fully_described"
	FieldDocumentation    Field = "documentation_status"
	FieldDocumentationURL Field = "documentation_url"
	FieldQPDocumentation  Field = "qp_documentation"
	FieldDataQuality      Field = "data_quality"
	FieldPayloads         Field = "payloads"
	FieldAuthMethod       Field = "auth_method"
	FieldDataPolicy       Field = "data_policy"
	FieldConverterPlugin  Field = "converter_plugin"
	FieldTRL              Field = "trl"
)

// Transnational Access canonical fields, in physical sheet column order,
// followed by the two derived fields.
const (
	FieldProjectID           Field = "project_id"
	FieldPIGender            Field = "pi_gender"
	FieldProjectTitle        Field = "project_title"
	FieldProjectAcronym      Field = "project_acronym"
	FieldTAHost              Field = "ta_host"
	FieldPIAffiliation       Field = "pi_affiliation"
	FieldProjectStage        Field = "project_stage"
	FieldStageUpdated        Field = "stage_updated"
	FieldStageComments       Field = "stage_comments"
	FieldVisitStart          Field = "visit_start"
	FieldVisitEnd            Field = "visit_end"
	FieldUnitOfAccess        Field = "unit_of_access"
	FieldUnitsRequested      Field = "units_requested"
	FieldNumberOfUsers       Field = "number_of_users"
	FieldUnitsUsed           Field = "units_used"
	FieldActivityDescription Field = "activity_description"
	FieldExpectedOutcomes    Field = "expected_outcomes"
	FieldDeliveredOutcomes   Field = "delivered_outcomes"
	FieldOutcomeMetadata     Field = "outcome_metadata"
	FieldAccessLevel         Field = "access_level"
	FieldAssociatedWP        Field = "associated_wp"
	FieldAssociatedVA        Field = "associated_va"
	FieldAssociatedRI        Field = "associated_ri"
	FieldIntegrationStrategy Field = "integration_strategy"
	FieldProviderContact     Field = "provider_contact"
	FieldCall                Field = "call"
	FieldApplicationNumber   Field = "application_number"
)

// Schema binds a dataset kind to its canonical field set, the verbatim raw
// label variants observed across both sources, and the position-disambiguated
// column group.
type Schema struct {
	Kind   DatasetKind
	Fields []Field

	kinds map[Field]FieldKind

	// exact maps verbatim raw labels (byte-for-byte, embedded newlines and
	// bracket units included) to canonical fields. The same field may appear
	// under several spellings because the two sources and the two fallback
	// formats were authored independently.
	exact map[string]Field

	// positionalLabel recurs across several columns whose meaning depends
	// only on physical order. positionalFields lists the fields those
	// occurrences bind to, in the authored column order.
	positionalLabel  string
	positionalFields []Field

	// minColumns is the smallest header width that can still reach the
	// documented column span. Data sits a fixed number of rows below the
	// header, so a header narrower than this cannot be reconciled.
	minColumns int

	// derived fields are produced by the deriver, never read from a column.
	derived map[Field]bool
}

// KindOf reports the declared value kind for a canonical field.
func (s *Schema) KindOf(f Field) FieldKind {
	return s.kinds[f]
}

// Derived reports whether a field is computed rather than column-backed.
func (s *Schema) Derived(f Field) bool {
	return s.derived[f]
}

// SchemaFor returns the canonical schema for a dataset kind.
func SchemaFor(kind DatasetKind) (*Schema, error) {
	switch kind {
	case VirtualAccess:
		return vaSchema, nil
	case TransnationalAccess:
		return taSchema, nil
	default:
		return nil, ErrSchemaKind
	}
}

var vaSchema = &Schema{
	Kind: VirtualAccess,
	Fields: []Field{
		FieldContact, FieldEmail, FieldAffiliation, FieldServiceName,
		FieldCompliantRI, FieldImplementation, FieldInstallationID,
		FieldServiceID, FieldWP, FieldDataRepr, FieldResponseFormats,
		FieldLicense, FieldMetadataStandard, FieldInstallationURL,
		FieldDomain, FieldCompletenessPct, FieldServiceRunning,
		FieldEndpointURL, FieldAPIStandard, FieldParametrization,
		FieldProvidesData, FieldAvailability, FieldLicenseExists,
		FieldFullyDescribed, FieldDocumentation, FieldDocumentationURL,
		FieldQPDocumentation, FieldDataQuality, FieldPayloads,
		FieldAuthMethod, FieldDataPolicy, FieldConverterPlugin, FieldTRL,
	},
	kinds: map[Field]FieldKind{
		FieldContact:          KindText,
		FieldEmail:            KindText,
		FieldAffiliation:      KindText,
		FieldServiceName:      KindText,
		FieldCompliantRI:      KindCategory,
		FieldImplementation:   KindScore,
		FieldInstallationID:   KindText,
		FieldServiceID:        KindText,
		FieldWP:               KindCategory,
		FieldDataRepr:         KindCategory,
		FieldResponseFormats:  KindCategory,
		FieldLicense:          KindCategory,
		FieldMetadataStandard: KindCategory,
		FieldInstallationURL:  KindText,
		FieldDomain:           KindCategory,
		FieldCompletenessPct:  KindCount,
		FieldServiceRunning:   KindFlag,
		FieldEndpointURL:      KindText,
		FieldAPIStandard:      KindCategory,
		FieldParametrization:  KindFlag,
		FieldProvidesData:     KindFlag,
		FieldAvailability:     KindCount,
		FieldLicenseExists:    KindFlag,
		FieldFullyDescribed:   KindFlag,
		FieldDocumentation:    KindScore,
		FieldDocumentationURL: KindText,
		FieldQPDocumentation:  KindFlag,
		FieldDataQuality:      KindFlag,
		FieldPayloads:         KindFlag,
		FieldAuthMethod:       KindCategory,
		FieldDataPolicy:       KindCategory,
		FieldConverterPlugin:  KindFlag,
		FieldTRL:              KindCount,
	},
	exact: map[string]Field{
		"Contact person":            FieldContact,
		"Email":                     FieldEmail,
		"Affiliation":               FieldAffiliation,
		"Service/Installation Name": FieldServiceName,
		"Compliant with Research infrastructure (RI)": FieldCompliantRI,
		// Authored with embedded newlines.
		"Implementation status to RI \n\n[0; not implemented,\n0.2; planned,\n0.5; partly implemented,\n1; implemented]": FieldImplementation,
		"Installation ID": FieldInstallationID,
		"Service ID":      FieldServiceID,
		"WP":              FieldWP,
		"Data Representations [georeferenced/non-georeferenced/time-series/software]": FieldDataRepr,
		"Service Response Formats": FieldResponseFormats,
		"License":                  FieldLicense,
		"Standard of metadata describing the service at RI integration level (not data)": FieldMetadataStandard,
		"Installation URL":           FieldInstallationURL,
		"Scientific domain/category": FieldDomain,
		"[%]":                        FieldCompletenessPct,
		"URL of the service endpoint": FieldEndpointURL,
		"(OGC, ERDDAP, etc)":          FieldAPIStandard,
		"percentage":                  FieldAvailability,
		"[0, not implemented; 0.2 planned; \n0.5, partly implemented; 1, implemented]": FieldDocumentation,
		"URL": FieldDocumentationURL,
		"[e.g. OAuth, SAML, API access token, none]": FieldAuthMethod,
		"[open; restricted; embargoed]":              FieldDataPolicy,
		"[1-9]":                                      FieldTRL,
		// The local workbook format de-duplicates the repeated range token by
		// appending ".N"; those spellings are unambiguous and match exactly.
		"[0;1].1": FieldParametrization,
		"[0;1].2": FieldProvidesData,
		"[0;1].3": FieldLicenseExists,
		"[0;1].4": FieldFullyDescribed,
		"[0;1].5": FieldQPDocumentation,
		"[0;1].6": FieldDataQuality,
		"[0;1].7": FieldPayloads,
		"[0;1].8": FieldConverterPlugin,
	},
	positionalLabel: "[0;1]",
	positionalFields: []Field{
		FieldServiceRunning, FieldParametrization, FieldProvidesData,
		FieldLicenseExists, FieldFullyDescribed, FieldQPDocumentation,
		FieldDataQuality, FieldPayloads, FieldConverterPlugin,
	},
	minColumns: 17,
	derived:    map[Field]bool{},
}

var taSchema = &Schema{
	Kind: TransnationalAccess,
	Fields: []Field{
		FieldInstallationID, FieldProjectID, FieldPIGender,
		FieldProjectTitle, FieldProjectAcronym, FieldTAHost,
		FieldPIAffiliation, FieldProjectStage, FieldStageUpdated,
		FieldStageComments, FieldVisitStart, FieldVisitEnd,
		FieldUnitOfAccess, FieldUnitsRequested, FieldNumberOfUsers,
		FieldUnitsUsed, FieldActivityDescription, FieldExpectedOutcomes,
		FieldDeliveredOutcomes, FieldOutcomeMetadata, FieldAccessLevel,
		FieldAssociatedWP, FieldAssociatedVA, FieldAssociatedRI,
		FieldIntegrationStrategy, FieldProviderContact,
		FieldCall, FieldApplicationNumber,
	},
	kinds: map[Field]FieldKind{
		FieldInstallationID:      KindText,
		FieldProjectID:           KindText,
		FieldPIGender:            KindCategory,
		FieldProjectTitle:        KindText,
		FieldProjectAcronym:      KindText,
		FieldTAHost:              KindCategory,
		FieldPIAffiliation:       KindCategory,
		FieldProjectStage:        KindCategory,
		FieldStageUpdated:        KindDate,
		FieldStageComments:       KindText,
		FieldVisitStart:          KindDate,
		FieldVisitEnd:            KindDate,
		FieldUnitOfAccess:        KindCategory,
		FieldUnitsRequested:      KindCount,
		FieldNumberOfUsers:       KindCount,
		FieldUnitsUsed:           KindCount,
		FieldActivityDescription: KindText,
		FieldExpectedOutcomes:    KindText,
		FieldDeliveredOutcomes:   KindText,
		FieldOutcomeMetadata:     KindText,
		FieldAccessLevel:         KindCategory,
		FieldAssociatedWP:        KindCategory,
		FieldAssociatedVA:        KindCategory,
		FieldAssociatedRI:        KindCategory,
		FieldIntegrationStrategy: KindText,
		FieldProviderContact:     KindText,
		FieldCall:                KindCategory,
		FieldApplicationNumber:   KindText,
	},
	exact: map[string]Field{
		"Installation ID": FieldInstallationID,
		"Project ID":      FieldProjectID,
		// Both spellings exist upstream, with and without the trailing space.
		"PI Gender ":      FieldPIGender,
		"PI Gender":       FieldPIGender,
		"Project title":   FieldProjectTitle,
		"Project acronym": FieldProjectAcronym,
		"TA host":         FieldTAHost,
		"PI Affiliation":  FieldPIAffiliation,
		"Project Stage\n(completed milestone)": FieldProjectStage,
		"Stage updated on":                     FieldStageUpdated,
		"Comments to the stage\n(optional)":    FieldStageComments,
		"Start of the Visit/Access":            FieldVisitStart,
		"End of the Visit/Access":              FieldVisitEnd,
		"Unit of access":                       FieldUnitOfAccess,
		"Number of units requested":            FieldUnitsRequested,
		"Number of Users":                      FieldNumberOfUsers,
		"Number of units used":                 FieldUnitsUsed,
		"Short description of the activity":    FieldActivityDescription,
		"Expected assets as outcomes":          FieldExpectedOutcomes,
		"Delivered assets as outcomes":         FieldDeliveredOutcomes,
		"Metadata of the outcome":              FieldOutcomeMetadata,
		"Level of access":                      FieldAccessLevel,
		"Associated WP":                        FieldAssociatedWP,
		"Associated VA":                        FieldAssociatedVA,
		"Associated RI":                        FieldAssociatedRI,
		"Expected strategy of integration":     FieldIntegrationStrategy,
		"Service provider contact ":            FieldProviderContact,
		"Service provider contact":             FieldProviderContact,
	},
	minColumns: 8,
	derived: map[Field]bool{
		FieldCall:              true,
		FieldApplicationNumber: true,
	},
}
