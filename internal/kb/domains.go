// Package kb implements the rule-based matcher over a static knowledge
// base of industry certifications and partner learning platforms.
package kb

// DomainCertifications maps a lower-cased academic domain phrase to the
// industry certifications relevant to it. The table is ordered: matching
// iterates it top to bottom so downstream first-wins deduplication is
// deterministic.
type DomainCertifications struct {
	Domain         string
	Certifications []string
}

var domainCertifications = []DomainCertifications{
	// Ingenierías y tecnología.
	{"data science", []string{"Google Data Analytics", "IBM Data Science", "Microsoft Azure Data Scientist", "SAS Data Science"}},
	{"machine learning", []string{"Google Machine Learning", "AWS Machine Learning", "TensorFlow Developer", "DeepLearning.AI"}},
	{"cloud computing", []string{"AWS Cloud Practitioner", "Azure Fundamentals", "Google Cloud Digital Leader"}},
	{"cybersecurity", []string{"CompTIA Security+", "Google Cybersecurity", "IBM Cybersecurity Analyst", "CISSP"}},
	{"project management", []string{"Google Project Management", "PMI CAPM", "Scrum.org PSM I", "Agile Master"}},
	{"marketing", []string{"Google Digital Marketing", "HubSpot Inbound Marketing", "Meta Social Media Marketing", "Salesforce Marketing Cloud"}},
	{"programming", []string{"Oracle Java Certified", "Microsoft Technology Associate", "Python Institute PCEP", "Unity Certified User"}},
	{"business", []string{"Six Sigma Yellow Belt", "Google Business Intelligence", "Lean Management", "Salesforce Associate"}},
	{"artificial intelligence", []string{"Ingeniero de IA de Microsoft Azure", "Ingeniero de ML Profesional de Google", "Certificado Profesional de IA Aplicada de IBM"}},

	// Diseño, arquitectura y arte.
	{"design", []string{"Google UX Design", "Adobe Certified Professional", "Interaction Design Foundation", "Autodesk Certified User"}},
	{"arquitectura", []string{"Autodesk Revit Architecture", "LEED Green Associate", "AutoCAD Certified User", "BIM Manager"}},
	{"arte", []string{"Diplomado en Historia del Arte", "Curso de Artística Profesional (Edutin)", "Diseño Gráfico (Español)"}},
	{"urbanismo", []string{"Planetizen Courses", "LEED Green Associate", "GIS Certification"}},

	// Ciencias de la salud.
	{"health", []string{"HIPAA Compliance", "WHO Health Emergency", "Public Health Informatics", "Red Cross First Aid"}},
	{"salud", []string{"Primeros Auxilios (Cruz Roja)", "HIPAA (Español)", "Salud Pública"}},
	{"nutrición", []string{"Stanford Introduction to Food and Health", "Precision Nutrition", "ServSafe"}},
	{"ingeniería de alimentos", []string{"HACCP Certification", "FSSC 22000", "ServSafe Manager"}},
	{"biotecnología", []string{"BioTech Primer", "Good Manufacturing Practice (GMP)"}},

	// Humanidades, educación y sociales.
	{"education", []string{"Google Certified Educator", "ISTE Certification", "UNESCO ICT-CFT", "Apple Teacher", "Canvas Certified Educator"}},
	{"educación", []string{"Educador Certificado de Google", "Certificación ISTE", "UNESCO ICT-CFT"}},
	{"pedagogía", []string{"Montessori Diploma", "Reggio Emilia Approach", "Neurodidáctica", "Estrategias de Enseñanza-Aprendizaje"}},
	{"humanidades", []string{"Diplomado en Humanidades Digitales", "Cátedra UNESCO Bioética", "Comunicación Intercultural"}},
	{"teaching", []string{"TEFL/TESOL Certification", "Cambridge CELTA", "TKT (Teaching Knowledge Test)"}},
	{"derecho", []string{"Legal Technology Certificate", "GDPR Compliance", "Intellectual Property Law", "Arbitraje Internacional"}},
	{"law", []string{"Legal Tech", "Cyber Law", "International Law Certificate", "Legal Project Management"}},
	{"derechos humanos", []string{"Amnesty International Human Rights", "UN Human Rights Education", "Corte Interamericana DH"}},
	{"psicología", []string{"Mental Health First Aid", "APA Continuing Education", "Counseling Skills", "Terapia Cognitivo-Conductual"}},

	// Ciencias básicas e ingeniería.
	{"física", []string{"Diplomado en Físca (UNAM)", "Física Computacional", "Mecánica Cuántica para Científicos", "Curso de Física (Edutin)"}},
	{"química", []string{"Diplomado en Química Analítica (ITM)", "Química en Contexto", "Curso de Química (Edutin)", "SC(ASCP) Chemistry Specialist"}},
	{"ingeniería química", []string{"Six Sigma Green Belt (Español)", "Gestión de Seguridad de Procesos", "Diplomado en Ingeniería Química"}},
	{"biología", []string{"Diplomado en Biología Molecular (Genotipia)", "Curso de Biología (Edutin)", "Bioinformática", "Genómica"}},
	{"robótica", []string{"Diplomado en Robótica (Tec de Monterrey)", "Curso de Robótica (Edutin)", "Certificación FANUC", "Programación de Robots (Rosetta)"}},

	// Humanidades y artes, ampliado.
	{"historia", []string{"Diplomado Historia de México (UNAM)", "Curso de Historia Universal (Edutin)", "Estudios de Museos", "Archivística"}},
	{"literatura", []string{"Diplomado en Literatura y Lengua (Educa Perú)", "Certificación Experto en Literatura Contemporánea", "Escritura Creativa (Español)"}},

	// Tecnología avanzada, ampliado.
	{"inteligencia artificial", []string{"Ingeniero de IA de Microsoft Azure", "Ingeniero de ML Profesional de Google", "Certificado Profesional de IA Aplicada de IBM"}},
	{"programación", []string{"Desarrollador Certificado AWS (Español)", "Certificado Profesional de Desarrollador de Android", "Python Institute PCAP (Español)"}},
	{"diseño", []string{"Certificado Profesional de Diseño de Experiencia del Usuario (UX) de Google", "Adobe Certified Professional (Español)", "Design Thinking (Español)"}},
	{"tecnología", []string{"Certificado Profesional de Soporte de TI de Google", "AWS Cloud Practitioner (Español)", "Cisco CCNA (Español)"}},
	{"transformación digital", []string{"Transformación Digital (MIT en Español)", "Scrum Master (Español)", "Diplomado en Transformación Digital"}},

	// Traducciones directas y alias comunes en español.
	{"análisis de datos", []string{"Certificado Profesional de Google en Análisis de Datos", "Ciencia de Datos de IBM", "Analista de Datos de Microsoft Power BI"}},
	{"gestión de proyectos", []string{"Certificado Profesional de Gestión de Proyectos de Google", "CAPM del PMI", "Scrum Master Certificado"}},
	{"ciberseguridad", []string{"Certificado Profesional de Ciberseguridad de Google", "CompTIA Security+ (Español)", "Analista de Ciberseguridad de IBM"}},
	{"mercadotecnia", []string{"Marketing Digital y E-commerce de Google", "Meta Social Media Marketing (Español)", "HubSpot Inbound Marketing (Español)"}},
	{"liderazgo", []string{"SHRM-CP (Español)", "Liderazgo CCL", "Harvard ManageMentor (Español)"}},
	{"sustentabilidad", []string{"Sustentabilidad ISSP", "Estándares GRI", "Alfabetización en Carbono"}},
	{"finanzas", []string{"CFA Institute", "Conceptos de Mercado Bloomberg (Español)", "Instituto de Finanzas Corporativas"}},
}

// Domains returns the ordered domain→certifications table.
func Domains() []DomainCertifications {
	return domainCertifications
}
