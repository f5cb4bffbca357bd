package recommend

// archetype describes one entry of the fixed job taxonomy the recommender
// scores against.
type archetype struct {
	Title          string
	Description    string
	RequiredSkills []string
}

// jobTaxonomy is the static list of job archetypes used as recommendation
// candidates. Order matters: equal fit scores keep taxonomy order.
var jobTaxonomy = []archetype{
	{
		Title:          "Senior Data Analyst",
		Description:    "Analyze complex datasets to derive business insights and drive strategic decisions using statistical methods and data visualization tools.",
		RequiredSkills: []string{"SQL", "Python", "Tableau", "Excel", "Statistics", "Data Analysis", "Business Intelligence"},
	},
	{
		Title:          "Business Intelligence Analyst",
		Description:    "Transform data into actionable business intelligence through reporting and visualization to support decision-making processes.",
		RequiredSkills: []string{"Excel", "Power BI", "SQL", "Data Visualization", "Business Analysis", "Reporting", "Analytics"},
	},
	{
		Title:          "Product Analyst",
		Description:    "Analyze product performance and user behavior to optimize product strategy and improve user experience metrics.",
		RequiredSkills: []string{"Analytics", "A/B Testing", "SQL", "Product Management", "User Research", "Data Analysis", "KPI Tracking"},
	},
	{
		Title:          "Data Scientist",
		Description:    "Apply machine learning and statistical modeling to solve complex business problems and predict future trends.",
		RequiredSkills: []string{"Python", "R", "Machine Learning", "Statistics", "SQL", "TensorFlow", "Pandas", "Scikit-learn"},
	},
	{
		Title:          "Marketing Analyst",
		Description:    "Analyze marketing campaigns and customer data to optimize marketing strategies and improve ROI.",
		RequiredSkills: []string{"Google Analytics", "Excel", "SQL", "Marketing Automation", "A/B Testing", "Customer Segmentation"},
	},
	{
		Title:          "Financial Analyst",
		Description:    "Analyze financial data and market trends to support investment decisions and financial planning.",
		RequiredSkills: []string{"Excel", "Financial Modeling", "SQL", "Accounting", "Valuation", "Risk Analysis", "Bloomberg"},
	},
	{
		Title:          "Operations Analyst",
		Description:    "Optimize business operations through process analysis and efficiency improvements using data-driven insights.",
		RequiredSkills: []string{"Process Improvement", "Excel", "SQL", "Project Management", "Lean Six Sigma", "Analytics"},
	},
	{
		Title:          "Research Analyst",
		Description:    "Conduct market research and competitive analysis to inform business strategy and product development.",
		RequiredSkills: []string{"Market Research", "Excel", "Statistics", "Survey Design", "Data Collection", "Report Writing"},
	},
	{
		Title:          "Quantitative Analyst",
		Description:    "Develop mathematical models and algorithms for risk management and trading strategies in financial markets.",
		RequiredSkills: []string{"Python", "R", "Mathematics", "Statistics", "Risk Management", "Financial Modeling", "C++"},
	},
	{
		Title:          "Business Analyst",
		Description:    "Bridge business and IT teams by analyzing business processes and requirements to drive system improvements.",
		RequiredSkills: []string{"Business Analysis", "Requirements Gathering", "Process Mapping", "SQL", "Agile", "Documentation"},
	},
}
