package transform

// defaultCasingEntries is the built-in fragment table for BRSR flat keys.
// Keys are lowercase joined fragments as they appear in extraction output;
// values are the camel-cased field names the frontend schema expects.
//
// The resolver matches fragments greedily across segment boundaries, so a
// compound entry must never be the concatenation of words that also occur
// as separate path segments ("permanent" + "male" stays nested; do not add
// "permanentmale").
var defaultCasingEntries = map[string]string{
	// Section A
	"entityname":             "entityName",
	"yearofincorporation":    "yearOfIncorporation",
	"registeredaddress":      "registeredAddress",
	"corporateaddress":       "corporateAddress",
	"financialyear":          "financialYear",
	"stockexchanges":         "stockExchanges",
	"paidupcapital":          "paidUpCapital",
	"contactperson":          "contactPerson",
	"contactname":            "contactName",
	"contactdesignation":     "contactDesignation",
	"contactphone":           "contactPhone",
	"contactemail":           "contactEmail",
	"reportingboundary":      "reportingBoundary",
	"assuranceprovider":      "assuranceProvider",
	"assurancetype":          "assuranceType",
	"businessactivities":     "businessActivities",
	"niccode":                "nicCode",
	"turnoverpercent":        "turnoverPercent",
	"marketsserved":          "marketsServed",
	"exportcontribution":     "exportContribution",
	"boardofdirectors":       "boardOfDirectors",
	"otherthanpermanent":     "otherThanPermanent",
	"turnoverrate":           "turnoverRate",
	"holdingsubsidiary":      "holdingSubsidiary",
	"csrdetails":             "csrDetails",
	"currentfy":              "currentFY",
	"previousfy":             "previousFY",
	"currentyear":            "currentYear",
	"previousyear":           "previousYear",
	"nationalplants":         "nationalPlants",
	"nationaloffices":        "nationalOffices",
	"internationalplants":    "internationalPlants",
	"internationaloffices":   "internationalOffices",
	"nationalstates":         "nationalStates",
	"internationalcountries": "internationalCountries",
	"femalepercent":          "femalePercent",
	"prescribedamount":       "prescribedAmount",
	"materialissues":         "materialIssues",

	// Section B
	"policymatrix":        "policyMatrix",
	"haspolicy":           "hasPolicy",
	"approvedbyboard":     "approvedByBoard",
	"weblink":             "webLink",
	"directorstatement":   "directorStatement",
	"frequencyreview":     "frequencyReview",
	"chiefresponsibility": "chiefResponsibility",
	"totalprogrammes":     "totalProgrammes",
	"topicscovered":       "topicsCovered",
	"percentagecovered":   "percentageCovered",

	// Principles 1 and 2
	"percentagecoveredbytraining":  "percentageCoveredByTraining",
	"finespenalties":               "finesPenalties",
	"appealsoutstanding":           "appealsOutstanding",
	"anticorruptionpolicy":         "antiCorruptionPolicy",
	"disciplinaryactions":          "disciplinaryActions",
	"conflictofinterestprocess":    "conflictOfInterestProcess",
	"conflictofinterestcomplaints": "conflictOfInterestComplaints",
	"correctiveactions":            "correctiveActions",
	"accountspayabledays":          "accountsPayableDays",
	"opennessbusiness":             "opennessBusiness",
	"concentrationpurchases":       "concentrationPurchases",
	"tradinghousespercent":         "tradingHousesPercent",
	"dealerscount":                 "dealersCount",
	"top10tradinghouses":           "top10TradingHouses",
	"concentrationsales":           "concentrationSales",
	"dealersdistributorspercent":   "dealersDistributorsPercent",
	"top10dealers":                 "top10Dealers",
	"sharerpts":                    "shareRPTs",
	"loansadvances":                "loansAdvances",
	"valuechainawareness":          "valueChainAwareness",
	"rdcapexinvestments":           "rdCapexInvestments",
	"improvementdetails":           "improvementDetails",
	"sustainablesourcing":          "sustainableSourcing",
	"proceduresinplace":            "proceduresInPlace",
	"percentagesustainablysourced": "percentageSustainablySourced",
	"reclaimprocesses":             "reclaimProcesses",
	"wastecollectionplaninline":    "wasteCollectionPlanInLine",
	"lcadetails":                   "lcaDetails",
	"recycledinputmaterial":        "recycledInputMaterial",
	"inputmaterial":                "inputMaterial",
	"trainingcoverage":             "trainingCoverage",
	"nonmonetary":                  "nonMonetary",
	"rdinvestment":                 "rdInvestment",
	"capexinvestment":              "capexInvestment",
	"hazardouswaste":               "hazardousWaste",

	// Principles 3 and 4
	"employeewellbeing":           "employeeWellbeing",
	"workerwellbeing":             "workerWellbeing",
	"healthinsurance":             "healthInsurance",
	"accidentinsurance":           "accidentInsurance",
	"maternitybenefit":            "maternityBenefits",
	"paternitybenefit":            "paternityBenefits",
	"daycare":                     "dayCare",
	"spendingonwellbeing":         "spendingOnWellbeing",
	"retirementbenefits":          "retirementBenefits",
	"employeespercent":            "employeesPercent",
	"workerspercent":              "workersPercent",
	"deducteddeposited":           "deductedDeposited",
	"accessibilityofworkplaces":   "accessibilityOfWorkplaces",
	"accessibilityworkplaces":     "accessibilityWorkplaces",
	"equalopportunitypolicy":      "equalOpportunityPolicy",
	"unionmembership":             "unionMembership",
	"parentalleaverates":          "parentalLeaveRates",
	"permanentemployees":          "permanentEmployees",
	"permanentworkers":            "permanentWorkers",
	"returntoworkrate":            "returnToWorkRate",
	"retentionrate":               "retentionRate",
	"grievancemechanism":          "grievanceMechanism",
	"otherthanpermanentworkers":   "otherThanPermanentWorkers",
	"otherthanpermanentemployees": "otherThanPermanentEmployees",
	"valuechain":                  "valueChain",
	"membershipunions":            "membershipUnions",
	"totalemployees":              "totalEmployees",
	"membersinunions":             "membersInUnions",
	"totalworkers":                "totalWorkers",
	"trainingdetails":             "trainingDetails",
	"healthsafety":                "healthSafety",
	"skillupgradation":            "skillUpgradation",
	"performancereviews":          "performanceReviews",
	"healthsafetymanagement":      "healthSafetyManagement",
	"safetyincidents":             "safetyIncidents",
	"totalrecordableinjuries":     "totalRecordableInjuries",
	"highconsequenceinjuries":     "highConsequenceInjuries",
	"safetymeasures":              "safetyMeasures",
	"complaintsworkingconditions": "complaintsWorkingConditions",
	"workingconditions":           "workingConditions",
	"pendingresolution":           "pendingResolution",
	"lifeinsurance":               "lifeInsurance",
	"statutoryduesvaluechain":     "statutoryDuesValueChain",
	"totalaffected":               "totalAffected",
	"transitionassistance":        "transitionAssistance",
	"valuechainassessment":        "valueChainAssessment",
	"healthsafetypractices":       "healthSafetyPractices",
	"stakeholderidentification":   "stakeholderIdentification",
	"stakeholderengagement":       "stakeholderEngagement",
	"stakeholdergroups":           "stakeholderGroups",
	"consultationprocess":         "consultationProcess",
	"stakeholdergroup":            "stakeholderGroup",
	"vulnerablemarginalized":      "vulnerableMarginalized",
	"boardconsultation":           "boardConsultation",
	"stakeholderconsultationused": "stakeholderConsultationUsed",
	"vulnerableengagement":        "vulnerableEngagement",
	"vulnerablegroup":             "vulnerableGroup",
	"actiontaken":                 "actionTaken",

	// Principle 5
	"minimumwages":                         "minimumWages",
	"equaltominwage":                       "equalToMinWage",
	"morethanminwage":                      "moreThanMinWage",
	"medianremuneration":                   "medianRemuneration",
	"keymanagerialpersonnel":               "keyManagerialPersonnel",
	"employeesotherthanbodandkmp":          "employeesOtherThanBoDAndKMP",
	"grosswagesfemales":                    "grossWagesFemales",
	"focalpointhumanrights":                "focalPointHumanRights",
	"grievancemechanisms":                  "grievanceMechanisms",
	"sexualharassment":                     "sexualHarassment",
	"discriminationatworkplace":            "discriminationAtWorkplace",
	"childlabour":                          "childLabour",
	"forcedlabour":                         "forcedLabour",
	"forcedinvoluntarylabour":              "forcedInvoluntaryLabour",
	"otherhumanrights":                     "otherHumanRights",
	"poshcomplaints":                       "poshComplaints",
	"totalcomplaints":                      "totalComplaints",
	"complaintsaspercentfemale":            "complaintsAsPercentFemale",
	"complaintsupheld":                     "complaintsUpheld",
	"mechanismspreventadverseconsequences": "mechanismsPreventAdverseConsequences",
	"humanrightsincontracts":               "humanRightsInContracts",
	"humanrightstraining":                  "humanRightsTraining",
	"humanrightscomplaints":                "humanRightsComplaints",
	"equaltominimum":                       "equalToMinimum",
	"humanrightsduediligence":              "humanRightsDueDiligence",
	"accessibilitydifferentlyabled":        "accessibilityDifferentlyAbled",
	"correctiveactionsvaluechain":          "correctiveActionsValueChain",
	"businessprocessmodified":              "businessProcessModified",

	// Principle 6
	"energyconsumption":                 "energyConsumption",
	"nonrenewable":                      "nonRenewable",
	"othersources":                      "otherSources",
	"totalenergyconsumed":               "totalEnergyConsumed",
	"energyintensity":                   "energyIntensity",
	"energyintensityperturnover":        "energyIntensityPerTurnover",
	"renewableenergy":                   "renewableEnergy",
	"waterwithdrawal":                   "waterWithdrawal",
	"waterintensity":                    "waterIntensity",
	"ghgintensity":                      "ghgIntensity",
	"ecologicallysensitiveoperations":   "ecologicallySensitiveOperations",
	"complianceenvironmentallaw":        "complianceEnvironmentalLaw",
	"energyintensityppp":                "energyIntensityPPP",
	"energyintensityphysicaloutput":     "energyIntensityPhysicalOutput",
	"externalassessment":                "externalAssessment",
	"patscheme":                         "patScheme",
	"patfacilities":                     "patFacilities",
	"waterdetails":                      "waterDetails",
	"surfacewater":                      "surfaceWater",
	"groundwater":                       "groundWater",
	"thirdpartywater":                   "thirdPartyWater",
	"seawaterdesalinated":               "seawaterDesalinated",
	"waterintensityperturnover":         "waterIntensityPerTurnover",
	"waterintensityppp":                 "waterIntensityPPP",
	"waterintensityphysicaloutput":      "waterIntensityPhysicalOutput",
	"waterdischarge":                    "waterDischarge",
	"notreatment":                       "noTreatment",
	"withtreatment":                     "withTreatment",
	"thirdparties":                      "thirdParties",
	"totalwaterdischarged":              "totalWaterDischarged",
	"zeroliquiddischarge":               "zeroLiquidDischarge",
	"airemissions":                      "airEmissions",
	"ghgemissions":                      "ghgEmissions",
	"scope1and2intensityperturnover":    "scope1And2IntensityPerTurnover",
	"scope1and2intensityphysicaloutput": "scope1And2IntensityPhysicalOutput",
	"totalscope1and2":                   "totalScope1And2",
	"ghgreductionprojects":              "ghgReductionProjects",
	"wastemanagement":                   "wasteManagement",
	"plasticwaste":                      "plasticWaste",
	"ewaste":                            "eWaste",
	"biomedicalwaste":                   "bioMedicalWaste",
	"constructiondemolitionwaste":       "constructionDemolitionWaste",
	"batterywaste":                      "batteryWaste",
	"radioactivewaste":                  "radioactiveWaste",
	"otherhazardouswaste":               "otherHazardousWaste",
	"othernonhazardouswaste":            "otherNonHazardousWaste",
	"totalwaste":                        "totalWaste",
	"wasteintensityperturnover":         "wasteIntensityPerTurnover",
	"wasteintensityppp":                 "wasteIntensityPPP",
	"wasteintensityphysicaloutput":      "wasteIntensityPhysicalOutput",
	"otherrecovery":                     "otherRecovery",
	"totalrecovered":                    "totalRecovered",
	"otherdisposal":                     "otherDisposal",
	"totaldisposed":                     "totalDisposed",
	"wastepractices":                    "wastePractices",
	"ecologicallysensitiveareas":        "ecologicallySensitiveAreas",
	"ecologicallysensitivedetails":      "ecologicallySensitiveDetails",
	"environmentalimpactassessments":    "environmentalImpactAssessments",
	"environmentalcompliance":           "environmentalCompliance",
	"noncompliances":                    "nonCompliances",
	"waterstressareas":                  "waterStressAreas",
	"natureofoperations":                "natureOfOperations",
	"scope3emissions":                   "scope3Emissions",
	"scope3emissionsperturnover":        "scope3EmissionsPerTurnover",
	"scope3intensityphysicaloutput":     "scope3IntensityPhysicalOutput",
	"biodiversityimpact":                "biodiversityImpact",
	"resourceefficiencyinitiatives":     "resourceEfficiencyInitiatives",
	"businesscontinuityplan":            "businessContinuityPlan",
	"valuechainenvironmentalimpact":     "valueChainEnvironmentalImpact",
	"valuechainpartnersassessed":        "valueChainPartnersAssessed",

	// Principles 7, 8 and 9
	"tradeassociations":                  "tradeAssociations",
	"publicpolicypositions":              "publicPolicyPositions",
	"communitygrievances":                "communityGrievances",
	"csraspirationaldistricts":           "csrAspirationalDistricts",
	"marginalizedsuppliers":              "marginalizedSuppliers",
	"intellectualpropertybenefits":       "intellectualPropertyBenefits",
	"deliveryessentialservices":          "deliveryEssentialServices",
	"databreachespersonalinfo":           "dataBreachesPersonalInfo",
	"productinfochannels":                "productInfoChannels",
	"numberofaffiliations":               "numberOfAffiliations",
	"affiliationslist":                   "affiliationsList",
	"anticompetitiveconduct":             "antiCompetitiveConduct",
	"publicpolicyadvocacy":               "publicPolicyAdvocacy",
	"policyadvocated":                    "policyAdvocated",
	"methodresorted":                     "methodResorted",
	"publicdomain":                       "publicDomain",
	"frequencyofreview":                  "frequencyOfReview",
	"socialimpactassessments":            "socialImpactAssessments",
	"rehabilitationresettlement":         "rehabilitationResettlement",
	"communitygrievancemechanism":        "communityGrievanceMechanism",
	"inputmaterialsourcing":              "inputMaterialSourcing",
	"withindistrict":                     "withinDistrict",
	"neighboringdistricts":               "neighboringDistricts",
	"jobcreation":                        "jobCreation",
	"semiurban":                          "semiUrban",
	"negativeimpactmitigation":           "negativeImpactMitigation",
	"csrprojects":                        "csrProjects",
	"aspirationaldistrict":               "aspirationalDistrict",
	"amountspent":                        "amountSpent",
	"preferentialprocurement":            "preferentialProcurement",
	"vulnerablegroups":                   "vulnerableGroups",
	"procurementpercentage":              "procurementPercentage",
	"intellectualproperty":               "intellectualProperty",
	"ipdisputes":                         "ipDisputes",
	"csrbeneficiaries":                   "csrBeneficiaries",
	"percentvulnerable":                  "percentVulnerable",
	"consumercomplaintmechanism":         "consumerComplaintMechanism",
	"productinformationpercentage":       "productInformationPercentage",
	"environmentalparameters":            "environmentalParameters",
	"safeusage":                          "safeUsage",
	"consumercomplaints":                 "consumerComplaints",
	"dataprivacy":                        "dataPrivacy",
	"cybersecurity":                      "cyberSecurity",
	"cybersecuritypolicy":                "cyberSecurityPolicy",
	"deliveryofessentialservices":        "deliveryOfEssentialServices",
	"restrictivetradepractices":          "restrictiveTradePractices",
	"unfairtradepractices":               "unfairTradePractices",
	"productrecalls":                     "productRecalls",
	"databreaches":                       "dataBreaches",
	"numberofinstances":                  "numberOfInstances",
	"impactonbusiness":                   "impactOnBusiness",
	"turnoversafety":                     "turnoverSafety",
	"environmentallysustainableproducts": "environmentallySustainableProducts",
	"saferecyclableproducts":             "safeRecyclableProducts",
	"informationchannels":                "informationChannels",
	"consumersurveys":                    "consumerSurveys",
	"trendsinsatisfaction":               "trendsInSatisfaction",
	"areasofimpact":                      "areasOfImpact",
}
