package extractor

// Chunk is one unit of the chunked extraction run. Each chunk carries its
// own prompt covering a slice of the BRSR annexure; chunks are processed
// in order and their flat outputs merged into the final report.
type Chunk struct {
	ID     string
	Name   string
	Prompt string
}

// Chunks returns the fixed, ordered set of extraction chunks: Section A,
// Section B, and Section C split across three principle groups.
func Chunks() []Chunk {
	return []Chunk{
		{
			ID:     "sectionA_complete",
			Name:   "Section A: Company Information",
			Prompt: sectionAPrompt,
		},
		{
			ID:     "sectionB_complete",
			Name:   "Section B: Policies and Governance",
			Prompt: sectionBPrompt,
		},
		{
			ID:     "sectionC_p1_p3",
			Name:   "Section C: Principles 1-3",
			Prompt: sectionCP1P3Prompt,
		},
		{
			ID:     "sectionC_p4_p6",
			Name:   "Section C: Principles 4-6",
			Prompt: sectionCP4P6Prompt,
		},
		{
			ID:     "sectionC_p7_p9",
			Name:   "Section C: Principles 7-9",
			Prompt: sectionCP7P9Prompt,
		},
	}
}

const promptRules = `CRITICAL INSTRUCTIONS:
1. Return ONLY a valid JSON object - no markdown code blocks, no explanations before or after
2. Every key must be a FLAT underscore-delimited path exactly as specified; do not nest objects
3. If data is not found, use empty string ""
4. For numbers, use just the numeric value
5. For percentages, include the % symbol
6. Keys ending in "_array" must hold JSON arrays
7. Start your response with { and end with }`

const sectionAPrompt = `You are a BRSR (Business Responsibility and Sustainability Reporting) expert.
Extract ALL Section A information from this Indian company's report following SEBI BRSR Annexure 1 format.

` + promptRules + `

Return flat keys of this form:
{
    "sectionA_cin": "",
    "sectionA_entityName": "",
    "sectionA_yearOfIncorporation": "",
    "sectionA_registeredAddress": "",
    "sectionA_corporateAddress": "",
    "sectionA_email": "",
    "sectionA_telephone": "",
    "sectionA_website": "",
    "sectionA_financialYear": "",
    "sectionA_stockExchanges": "",
    "sectionA_paidUpCapital": "",
    "sectionA_contactName": "",
    "sectionA_contactDesignation": "",
    "sectionA_contactPhone": "",
    "sectionA_contactEmail": "",
    "sectionA_reportingBoundary": "",
    "sectionA_assuranceProvider": "",
    "sectionA_assuranceType": "",
    "sectionA_businessActivities_array": [],
    "sectionA_products_array": [],
    "sectionA_nationalPlants": "",
    "sectionA_nationalOffices": "",
    "sectionA_internationalPlants": "",
    "sectionA_internationalOffices": "",
    "sectionA_nationalStates": "",
    "sectionA_internationalCountries": "",
    "sectionA_exportContribution": "",
    "sectionA_employees_permanent_male": "",
    "sectionA_employees_permanent_female": "",
    "sectionA_employees_permanent_total": "",
    "sectionA_employees_otherThanPermanent_male": "",
    "sectionA_employees_otherThanPermanent_female": "",
    "sectionA_employees_otherThanPermanent_total": "",
    "sectionA_workers_permanent_male": "",
    "sectionA_workers_permanent_female": "",
    "sectionA_workers_permanent_total": "",
    "sectionA_workers_otherThanPermanent_male": "",
    "sectionA_workers_otherThanPermanent_female": "",
    "sectionA_workers_otherThanPermanent_total": "",
    "sectionA_board_total": "",
    "sectionA_board_female": "",
    "sectionA_board_femalePercent": "",
    "sectionA_kmp_total": "",
    "sectionA_kmp_female": "",
    "sectionA_kmp_femalePercent": "",
    "sectionA_turnover_employees_male": "",
    "sectionA_turnover_employees_female": "",
    "sectionA_turnover_employees_total": "",
    "sectionA_turnover_workers_male": "",
    "sectionA_turnover_workers_female": "",
    "sectionA_turnover_workers_total": "",
    "sectionA_subsidiaries": "",
    "sectionA_csr_prescribedAmount": "",
    "sectionA_csr_amountSpent": "",
    "sectionA_csr_surplus": "",
    "sectionA_complaints_communities_filed": "",
    "sectionA_complaints_communities_pending": "",
    "sectionA_complaints_investors_filed": "",
    "sectionA_complaints_investors_pending": "",
    "sectionA_complaints_shareholders_filed": "",
    "sectionA_complaints_shareholders_pending": "",
    "sectionA_complaints_employees_filed": "",
    "sectionA_complaints_employees_pending": "",
    "sectionA_complaints_customers_filed": "",
    "sectionA_complaints_customers_pending": "",
    "sectionA_complaints_valueChain_filed": "",
    "sectionA_complaints_valueChain_pending": "",
    "sectionA_materialIssues_array": []
}`

const sectionBPrompt = `You are a BRSR (Business Responsibility and Sustainability Reporting) expert.
Extract ALL Section B information from this Indian company's report following SEBI BRSR Annexure 1 format.

` + promptRules + `

Return flat keys of this form, with p1 through p9 covering all nine principles:
{
    "sectionB_policyMatrix_p1_hasPolicy": "",
    "sectionB_policyMatrix_p1_approvedByBoard": "",
    "sectionB_policyMatrix_p1_webLink": "",
    "sectionB_policyMatrix_p2_hasPolicy": "",
    "sectionB_policyMatrix_p2_approvedByBoard": "",
    "sectionB_policyMatrix_p2_webLink": "",
    "sectionB_policyMatrix_p9_hasPolicy": "",
    "sectionB_policyMatrix_p9_approvedByBoard": "",
    "sectionB_policyMatrix_p9_webLink": "",
    "sectionB_governance_directorStatement": "",
    "sectionB_governance_frequencyReview": "",
    "sectionB_governance_chiefResponsibility": "",
    "sectionB_governance_webLink": ""
}`

const sectionCP1P3Prompt = `You are a BRSR (Business Responsibility and Sustainability Reporting) expert.
Extract Section C Principles 1, 2 and 3 from this Indian company's report following SEBI BRSR Annexure 1 format.

` + promptRules + `

Return flat keys of this form:
{
    "sectionC_principle1_trainingCoverage_boardOfDirectors_percentageCovered": "",
    "sectionC_principle1_trainingCoverage_kmp_percentageCovered": "",
    "sectionC_principle1_trainingCoverage_employees_percentageCovered": "",
    "sectionC_principle1_trainingCoverage_workers_percentageCovered": "",
    "sectionC_principle1_finesPenalties_monetary_array": [],
    "sectionC_principle1_finesPenalties_nonMonetary_array": [],
    "sectionC_principle1_appealsOutstanding": "",
    "sectionC_principle1_antiCorruptionPolicy_exists": "",
    "sectionC_principle1_antiCorruptionPolicy_details": "",
    "sectionC_principle1_antiCorruptionPolicy_webLink": "",
    "sectionC_principle1_disciplinaryActions_directors_currentFY": "",
    "sectionC_principle1_disciplinaryActions_directors_previousFY": "",
    "sectionC_principle1_accountsPayableDays_currentFY": "",
    "sectionC_principle1_accountsPayableDays_previousFY": "",
    "sectionC_principle2_rdInvestment_currentFY": "",
    "sectionC_principle2_rdInvestment_previousFY": "",
    "sectionC_principle2_capexInvestment_currentFY": "",
    "sectionC_principle2_capexInvestment_previousFY": "",
    "sectionC_principle2_sustainableSourcing_proceduresInPlace": "",
    "sectionC_principle2_sustainableSourcing_percentageSustainablySourced": "",
    "sectionC_principle2_reclaimProcesses_plastics": "",
    "sectionC_principle2_reclaimProcesses_eWaste": "",
    "sectionC_principle2_reclaimProcesses_hazardousWaste": "",
    "sectionC_principle2_epr_applicable": "",
    "sectionC_principle3_employeeWellbeing_permanent_male_healthInsurance_percent": "",
    "sectionC_principle3_employeeWellbeing_permanent_female_healthInsurance_percent": "",
    "sectionC_principle3_workerWellbeing_permanent_male_healthInsurance_percent": "",
    "sectionC_principle3_spendingOnWellbeing_currentFY": "",
    "sectionC_principle3_retirementBenefits_pf_currentFY_employeesPercent": "",
    "sectionC_principle3_retirementBenefits_gratuity_currentFY_employeesPercent": "",
    "sectionC_principle3_retirementBenefits_esi_currentFY_employeesPercent": "",
    "sectionC_principle3_accessibilityWorkplaces": "",
    "sectionC_principle3_equalOpportunityPolicy": "",
    "sectionC_principle3_safetyIncidents_ltifr_employees_currentFY": "",
    "sectionC_principle3_safetyIncidents_ltifr_workers_currentFY": "",
    "sectionC_principle3_safetyIncidents_fatalities_employees_currentFY": "",
    "sectionC_principle3_safetyIncidents_fatalities_workers_currentFY": "",
    "sectionC_principle3_unionMembership_employeesPercent": "",
    "sectionC_principle3_unionMembership_workersPercent": "",
    "sectionC_principle3_trainingDetails_array": []
}`

const sectionCP4P6Prompt = `You are a BRSR (Business Responsibility and Sustainability Reporting) expert.
Extract Section C Principles 4, 5 and 6 from this Indian company's report following SEBI BRSR Annexure 1 format.

` + promptRules + `

Return flat keys of this form:
{
    "sectionC_principle4_stakeholderIdentification": "",
    "sectionC_principle4_stakeholderGroups_array": [],
    "sectionC_principle4_consultationProcess": "",
    "sectionC_principle5_humanRightsTraining_employeesPercent": "",
    "sectionC_principle5_humanRightsTraining_workersPercent": "",
    "sectionC_principle5_minimumWages_employees_equalToMinimum_percent": "",
    "sectionC_principle5_minimumWages_workers_equalToMinimum_percent": "",
    "sectionC_principle5_remuneration_bod_median": "",
    "sectionC_principle5_remuneration_kmp_median": "",
    "sectionC_principle5_remuneration_employees_median": "",
    "sectionC_principle5_remuneration_workers_median": "",
    "sectionC_principle5_humanRightsComplaints_sexualHarassment_filed": "",
    "sectionC_principle5_humanRightsComplaints_sexualHarassment_pending": "",
    "sectionC_principle5_humanRightsComplaints_discrimination_filed": "",
    "sectionC_principle5_humanRightsComplaints_childLabour_filed": "",
    "sectionC_principle5_humanRightsComplaints_forcedLabour_filed": "",
    "sectionC_principle5_humanRightsComplaints_wages_filed": "",
    "sectionC_principle5_poshComplaints_filed": "",
    "sectionC_principle5_poshComplaints_pending": "",
    "sectionC_principle5_grievanceMechanisms": "",
    "sectionC_principle5_assessments_childLabour_percent": "",
    "sectionC_principle5_assessments_forcedLabour_percent": "",
    "sectionC_principle5_assessments_sexualHarassment_percent": "",
    "sectionC_principle6_totalEnergyConsumed_currentFY": "",
    "sectionC_principle6_totalEnergyConsumed_previousFY": "",
    "sectionC_principle6_energyIntensity_currentFY": "",
    "sectionC_principle6_energyIntensity_previousFY": "",
    "sectionC_principle6_renewableEnergy_currentFY": "",
    "sectionC_principle6_waterWithdrawal_currentFY": "",
    "sectionC_principle6_waterWithdrawal_previousFY": "",
    "sectionC_principle6_waterIntensity_currentFY": "",
    "sectionC_principle6_zeroLiquidDischarge": "",
    "sectionC_principle6_airEmissions_nox_currentFY": "",
    "sectionC_principle6_airEmissions_sox_currentFY": "",
    "sectionC_principle6_ghgEmissions_scope1_currentFY": "",
    "sectionC_principle6_ghgEmissions_scope1_previousFY": "",
    "sectionC_principle6_ghgEmissions_scope2_currentFY": "",
    "sectionC_principle6_ghgEmissions_scope2_previousFY": "",
    "sectionC_principle6_ghgEmissions_scope3_currentFY": "",
    "sectionC_principle6_ghgIntensity_currentFY": "",
    "sectionC_principle6_wasteManagement_plasticWaste_currentFY": "",
    "sectionC_principle6_wasteManagement_eWaste_currentFY": "",
    "sectionC_principle6_wasteManagement_hazardousWaste_currentFY": "",
    "sectionC_principle6_wasteManagement_totalWaste_currentFY": "",
    "sectionC_principle6_ecologicallySensitiveOperations_array": [],
    "sectionC_principle6_environmentalImpactAssessments_array": [],
    "sectionC_principle6_complianceEnvironmentalLaw": ""
}`

const sectionCP7P9Prompt = `You are a BRSR (Business Responsibility and Sustainability Reporting) expert.
Extract Section C Principles 7, 8 and 9 from this Indian company's report following SEBI BRSR Annexure 1 format.

` + promptRules + `

Return flat keys of this form:
{
    "sectionC_principle7_tradeAssociations_count": "",
    "sectionC_principle7_tradeAssociations_array": [],
    "sectionC_principle7_antiCompetitiveConduct_array": [],
    "sectionC_principle7_publicPolicyPositions_array": [],
    "sectionC_principle8_socialImpactAssessments_array": [],
    "sectionC_principle8_rehabilitationResettlement_array": [],
    "sectionC_principle8_communityGrievances": "",
    "sectionC_principle8_inputMaterialSourcing_msme_currentFY": "",
    "sectionC_principle8_inputMaterialSourcing_district_currentFY": "",
    "sectionC_principle8_csrAspirationalDistricts_array": [],
    "sectionC_principle8_marginalizedSuppliers_percent": "",
    "sectionC_principle8_intellectualPropertyBenefits_array": [],
    "sectionC_principle9_consumerComplaints_dataPrivacy_currentFY": "",
    "sectionC_principle9_consumerComplaints_advertising_currentFY": "",
    "sectionC_principle9_consumerComplaints_cyberSecurity_currentFY": "",
    "sectionC_principle9_consumerComplaints_deliveryEssentialServices_currentFY": "",
    "sectionC_principle9_consumerComplaints_restrictiveTradePractices_currentFY": "",
    "sectionC_principle9_productRecalls_voluntary_number": "",
    "sectionC_principle9_productRecalls_forced_number": "",
    "sectionC_principle9_cyberSecurityPolicy": "",
    "sectionC_principle9_dataBreaches_number": "",
    "sectionC_principle9_dataBreachesPersonalInfo_percent": "",
    "sectionC_principle9_consumerSurveys": "",
    "sectionC_principle9_productInfoChannels": ""
}`
