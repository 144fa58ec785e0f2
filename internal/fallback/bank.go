package fallback

import "github.com/Divyanshgupta04/lern-deployment/internal/exam"

// template is one prebuilt question. Fields may be empty; materialization
// fills in defaults.
type template struct {
	QuestionText       string
	Options            []string
	CorrectAnswerIndex int
	Explanation        string
	Topic              string
	Difficulty         exam.Difficulty
}

// bank holds the offline question pools, keyed by fallback category. The
// bank is read-only after init; concurrent readers need no locking.
var bank = map[exam.Category][]template{
	exam.CategorySATMath: {
		{"If 3x + 12 = 24, what is the value of x - 4?", []string{"0", "4", "8", "12"}, 0, "3x + 12 = 24 => 3x = 12 => x = 4. Therefore, x - 4 = 4 - 4 = 0.", "Algebra", exam.DifficultyEasy},
		{"A line in the xy-plane passes through the origin and has a slope of 1/7. Which of the following points lies on the line?", []string{"(0, 7)", "(1, 7)", "(7, 1)", "(14, 2)"}, 2, "The equation of the line is y = (1/7)x. If x=7, y=1. So (7,1) lies on the line.", "Heart of Algebra", exam.DifficultyMedium},
		{"If f(x) = (x-2)^2 + 3, what is the minimum value of the function?", []string{"-2", "2", "3", "0"}, 2, "The vertex form y = a(x-h)^2 + k shows the minimum at k when a > 0. Here k=3.", "Passport to Advanced Math", exam.DifficultyMedium},
		{"What is the value of 5! / 3!?", []string{"20", "120", "60", "10"}, 0, "5! = 120, 3! = 6. 120/6 = 20.", "Arithmetic", exam.DifficultyEasy},
		{"If a triangle has sides 3, 4, and x, which of the following could be the value of x?", []string{"1", "5", "7", "8"}, 1, "By the triangle inequality, 3+4 > x, so x < 7. Also 3+x > 4, so x > 1. 5 is the only option.", "Geometry", exam.DifficultyMedium},
		{"Solve for x: 2(x + 5) - 3 = 11.", []string{"2", "7", "4", "1"}, 0, "2x + 10 - 3 = 11 => 2x + 7 = 11 => 2x = 4 => x = 2.", "Algebra", exam.DifficultyEasy},
		{"What is the slope of the line passing through (2, 3) and (5, 9)?", []string{"2", "3", "6", "1.5"}, 0, "Slope = (9-3)/(5-2) = 6/3 = 2.", "Coordinate Geometry", exam.DifficultyEasy},
		{"If 2^x = 32, what is x?", []string{"4", "5", "6", "16"}, 1, "2^5 = 32, so x = 5.", "Exponents", exam.DifficultyEasy},
		{"Find the median of the set {3, 1, 4, 1, 5}.", []string{"1", "3", "4", "2.8"}, 1, "Sorted set: {1, 1, 3, 4, 5}. The middle value is 3.", "Statistics", exam.DifficultyMedium},
		{"What is the area of a square with a perimeter of 20?", []string{"20", "25", "400", "16"}, 1, "Side = 20/4 = 5. Area = 5^2 = 25.", "Geometry", exam.DifficultyEasy},
	},
	exam.CategorySATRW: {
		{"Which choice completes the text with the most logical and precise word or phrase?\n\nAlthough the team's performance was initially ____, they managed to secure a victory in the final minutes of the game.", []string{"exemplary", "lackluster", "consistent", "predictable"}, 1, "'Lackluster' provides the necessary contrast to the eventual victory.", "Vocabulary", exam.DifficultyMedium},
		{"Which of the following sentences uses punctuation correctly?", []string{"The recipe calls for: flour, sugar, and eggs.", "The recipe calls for flour, sugar, and eggs.", "The recipe calls for; flour, sugar, and eggs.", "The recipe calls for, flour, sugar, and eggs."}, 1, "No punctuation is needed between the verb 'for' and the list.", "Standard English Conventions", exam.DifficultyEasy},
		{"The biologist argued that the new species was ____ to the island, meaning it was found nowhere else.", []string{"indigenous", "endemic", "migratory", "introduced"}, 1, "Endemic refers to a species native and restricted to a certain place.", "Contextual Vocabulary", exam.DifficultyMedium},
		{"Which word is a synonym for 'ephemeral'?", []string{"Lasting", "Short-lived", "Infinite", "Ancient"}, 1, "Ephemeral means lasting for a very short time.", "Vocabulary", exam.DifficultyMedium},
		{"Identify the error in the following sentence: 'Neither the players nor the coach were happy.'", []string{"No error", "coach were", "players nor", "with the"}, 1, "Verb should agree with 'coach' (singular), so 'was happy'.", "Grammar", exam.DifficultyHard},
		{"Which choice best uses a semicolon?", []string{"I like cake; because it is sweet.", "I like cake; it is sweet.", "I like; cake and cookies.", "I like cake; sweet and tasty."}, 1, "A semicolon connects two independent clauses.", "Punctuation", exam.DifficultyMedium},
		{"What does the word 'benevolent' mean?", []string{"Cruel", "Kind", "Strong", "Wealthy"}, 1, "Benevolent means well-meaning and kindly.", "Vocabulary", exam.DifficultyEasy},
		{"Choose the correct possessive: 'The ____ toys were scattered.'", []string{"childrens'", "childrens", "children's", "child's"}, 2, "'Children' is already plural; the possessive is formed by adding 's.", "Grammar", exam.DifficultyMedium},
		{"Which sentence is written in the passive voice?", []string{"The cat chased the mouse.", "The mouse was chased by the cat.", "The cat is chasing the mouse.", "The cat will chase the mouse."}, 1, "In passive voice, the subject ('mouse') receives the action.", "Grammar", exam.DifficultyMedium},
		{"What is the main purpose of a thesis statement?", []string{"To introduce the author", "To provide a summary of the conclusion", "To state the main argument of the essay", "To list the references used"}, 2, "A thesis statement clarifies the central claim or argument.", "Writing Skills", exam.DifficultyEasy},
	},
	exam.CategoryACTMath: {
		{"In the standard (x,y) coordinate plane, what is the slope of the line 4x + 7y = 12?", []string{"4/7", "-4/7", "7/4", "-7/4"}, 1, "Rewrite as y = (-4/7)x + 12/7. Slope is -4/7.", "Coordinate Geometry", exam.DifficultyMedium},
		{"If log(x) = 2, what is x?", []string{"10", "100", "2", "20"}, 1, "10^2 = 100.", "Algebra", exam.DifficultyEasy},
		{"What is the area of a circle with a radius of 5?", []string{"10π", "25π", "5π", "100π"}, 1, "Area = πr^2 = 25π.", "Geometry", exam.DifficultyEasy},
		{"If sin(θ) = 3/5, what is cos(θ) for an acute angle?", []string{"3/4", "4/5", "1/2", "5/3"}, 1, "cos^2 = 1 - sin^2 = 1 - 9/25 = 16/25. cos = 4/5.", "Trigonometry", exam.DifficultyMedium},
		{"Solve for x: 3(x - 4) = 15.", []string{"9", "7", "5", "11"}, 0, "3x - 12 = 15 => 3x = 27 => x = 9.", "Algebra", exam.DifficultyEasy},
		{"What is the average of 10, 20, and 60?", []string{"30", "45", "35", "25"}, 0, "(10+20+60)/3 = 90/3 = 30.", "Statistics", exam.DifficultyEasy},
		{"If x + y = 10 and x - y = 2, what is x?", []string{"4", "6", "8", "5"}, 1, "Adding equations: 2x = 12 => x = 6.", "Algebra", exam.DifficultyMedium},
		{"Solve for x: x^2 - 9 = 0.", []string{"3 only", "-3 only", "3 and -3", "0"}, 2, "x^2 = 9 => x = ±3.", "Algebra", exam.DifficultyEasy},
		{"How many degrees are in a hexagon?", []string{"360", "540", "720", "1080"}, 2, "(6-2)*180 = 720.", "Geometry", exam.DifficultyMedium},
		{"What is 20% of 150?", []string{"15", "30", "20", "45"}, 1, "0.20 * 150 = 30.", "Arithmetic", exam.DifficultyEasy},
	},
	exam.CategoryACTEnglish: {
		{"Choose the correct option: 'The group of students ____ going on a field trip tomorrow.'", []string{"is", "are", "was", "were"}, 0, "'The group' is singular.", "Subject-Verb Agreement", exam.DifficultyEasy},
		{"Which is most concise? 'The reason why he was late was because of the traffic'", []string{"He was late because of the traffic.", "The reason he was late was the traffic.", "Traffic made him late.", "He was late due to the fact that there was traffic."}, 2, "'Traffic made him late' is most direct.", "Style", exam.DifficultyMedium},
		{"Select the correct punctuation: 'I have three hobbies; running, swimming, and reading.'", []string{"hobbies: running", "hobbies running", "hobbies; running", "hobbies—running"}, 0, "Colon introduces the list.", "Punctuation", exam.DifficultyEasy},
		{"Select the correct word: 'The team won ____ first game.'", []string{"its", "it's", "their", "they're"}, 0, "'Its' indicates possession for the team.", "Pronouns", exam.DifficultyEasy},
		{"Change to singular: 'Every student in the class brought their own book.'", []string{"No change", "his or her own", "they're own", "one's own"}, 1, "'Every student' is singular.", "Agreement", exam.DifficultyMedium},
		{"Identify the conjunction: 'I wanted to go, but I was too tired.'", []string{"wanted", "but", "too", "tired"}, 1, "'But' is a coordinating conjunction.", "Grammar", exam.DifficultyEasy},
		{"Which word is an adjective? 'The quick brown fox jumps over the lazy dog.'", []string{"quick", "jumps", "fox", "over"}, 0, "'Quick' describes the fox.", "Parts of Speech", exam.DifficultyEasy},
		{"Choose the correct form: 'She has ____ to the store already.'", []string{"went", "gone", "goed", "going"}, 1, "'Gone' is the past participle used with 'has'.", "Verbs", exam.DifficultyMedium},
		{"Avoid wordiness: 'At this point in time, we are ready.'", []string{"Now", "Currently", "At this moment", "All of the above"}, 3, "All are better than the phrase 'at this point in time'.", "Style", exam.DifficultyMedium},
		{"Whose vs Who's: '____ going to the party?'", []string{"Whose", "Who's", "Whos", "Who is"}, 1, "'Who's' is the contraction of 'who is'.", "Grammar", exam.DifficultyEasy},
	},
	exam.CategoryACTScience: {
		{"What is the purpose of a control group?", []string{"Baseline for comparison", "Ensure significance", "Increase sample size", "Prove hypothesis"}, 0, "Used for comparison.", "Experimental Design", exam.DifficultyMedium},
		{"Light intensity is varied to measure growth. What is the independent variable?", []string{"Height", "Intensity", "Water", "Type"}, 1, "The manipulated variable.", "Experiments", exam.DifficultyEasy},
		{"Which cell part produces energy?", []string{"Nucleus", "Ribosome", "Mitochondria", "Golgi"}, 2, "Mitochondria create ATP.", "Biology", exam.DifficultyEasy},
		{"Boiling point of water at sea level?", []string{"0°C", "100°C", "50°C", "212°F"}, 1, "100°C.", "Physics", exam.DifficultyEasy},
		{"Hypothesis A: CO2 warms. Hypothesis B: CO2 cools. Warming observed. Support?", []string{"Hypothesis A", "Hypothesis B", "Both", "Neither"}, 0, "Observation matches A.", "Conflict Analysis", exam.DifficultyMedium},
		{"What is the pH of a neutral solution?", []string{"0", "7", "14", "1"}, 1, "pH 7 is neutral.", "Chemistry", exam.DifficultyEasy},
		{"Which is a chemical change?", []string{"Ice melting", "Water boiling", "Paper burning", "Glass breaking"}, 2, "Burning creates new substances.", "Chemistry", exam.DifficultyMedium},
		{"What does an anemometer measure?", []string{"Pressure", "Humidity", "Wind speed", "Rainfall"}, 2, "Measures wind speed.", "Earth Science", exam.DifficultyMedium},
		{"In the periodic table, what is the atomic number?", []string{"Protons", "Neutrons", "Electrons", "Mass"}, 0, "Atomic number = number of protons.", "Chemistry", exam.DifficultyEasy},
		{"Which planet is largest?", []string{"Mars", "Earth", "Jupiter", "Venus"}, 2, "Jupiter is the largest planet.", "Astronomy", exam.DifficultyEasy},
	},
	exam.CategoryAPBiology: {
		{"Function of mitochondria?", []string{"Protein", "Waste", "ATP", "Genes"}, 2, "Energy production.", "Biology", exam.DifficultyMedium},
		{"Role of DNA polymerase?", []string{"Unzip", "Add nucleotides", "Splicing", "Translate"}, 1, "Builds DNA strands.", "Molecular Bio", exam.DifficultyHard},
		{"Blood sugar hormone?", []string{"Adrenaline", "Insulin", "Estrogen", "Thyroxine"}, 1, "Insulin lowers sugar.", "Physiology", exam.DifficultyMedium},
		{"Sunlight to energy process?", []string{"Respiration", "Fermentation", "Photosynthesis", "Digestion"}, 2, "Photosynthesis.", "Plant Bio", exam.DifficultyEasy},
		{"Which of the following describes the secondary structure of a protein?", []string{"Amino acid sequence", "Alpha helices and beta sheets", "Overall 3D shape", "Interaction between subunits"}, 1, "Secondary structure involves hydrogen bonding into helices and sheets.", "Biochemistry", exam.DifficultyMedium},
	},
	exam.CategoryAPUSH: {
		{"19th Amendment granted?", []string{"Black vote", "Women vote", "Arms", "Abolition"}, 1, "Women's suffrage.", "History", exam.DifficultyMedium},
		{"Author of Declaration?", []string{"Washington", "Franklin", "Jefferson", "Adams"}, 2, "Thomas Jefferson.", "Revolution", exam.DifficultyEasy},
		{"Main cause of Civil War?", []string{"Slavery", "Tax", "Gold", "Prohibition"}, 0, "Slavery and states' rights.", "Civil War", exam.DifficultyEasy},
		{"What was the purpose of the Monroe Doctrine?", []string{"End slavery", "Prevent European interference in the Americas", "Annex Texas", "Open trade with China"}, 1, "It declared the Western Hemisphere off-limits to further European colonization.", "Foreign Policy", exam.DifficultyMedium},
	},
	exam.CategoryAPCalc: {
		{"f(x) = x^3 - 5x + 2, f'(2)?", []string{"12", "7", "3", "0"}, 1, "f'(x) = 3x^2 - 5.", "Calculus", exam.DifficultyMedium},
		{"Integral of 2x dx?", []string{"x^2 + C", "x + C", "2 + C", "x^3 + C"}, 0, "∫2x dx = x^2 + C.", "Integration", exam.DifficultyEasy},
		{"Derivative of sin(x)?", []string{"cos(x)", "-cos(x)", "tan(x)", "sin(x)"}, 0, "d/dx[sin] = cos.", "Differentiation", exam.DifficultyEasy},
		{"The limit of (1/x) as x approaches infinity is?", []string{"1", "0", "Infinity", "Undefined"}, 1, "As x grows, 1/x approaches zero.", "Limits", exam.DifficultyEasy},
	},
	exam.CategoryAPChem: {
		{"What is the molar mass of H2O?", []string{"10 g/mol", "18 g/mol", "16 g/mol", "2 g/mol"}, 1, "H=1, O=16. (2*1) + 16 = 18.", "Stoichiometry", exam.DifficultyEasy},
		{"Which bond involves the sharing of electron pairs?", []string{"Ionic", "Covalent", "Hydrogen", "Metallic"}, 1, "Covalent bonds share electrons.", "Bonding", exam.DifficultyEasy},
		{"A solution with a pH of 3 is?", []string{"Weakly basic", "Strongly acidic", "Neutral", "Weakly acidic"}, 1, "pH 0-6 is acidic, 3 is standard acidic.", "Acids and Bases", exam.DifficultyMedium},
	},
	exam.CategoryAPPhysics: {
		{"Force equals mass times ____?", []string{"Velocity", "Acceleration", "Gravity", "Time"}, 1, "F = ma.", "Mechanics", exam.DifficultyEasy},
		{"What is the unit of electrical resistance?", []string{"Volt", "Ampere", "Ohm", "Watt"}, 2, "Resistance is measured in Ohms (Ω).", "Electricity", exam.DifficultyEasy},
		{"The acceleration due to gravity on Earth is approximately?", []string{"5 m/s²", "9.8 m/s²", "12 m/s²", "0 m/s²"}, 1, "g ≈ 9.8 m/s².", "Mechanics", exam.DifficultyEasy},
	},
	exam.CategoryAPPsych: {
		{"Who is known as the father of psychoanalysis?", []string{"B.F. Skinner", "Sigmund Freud", "Ivan Pavlov", "Carl Rogers"}, 1, "Freud developed psychoanalytic theory.", "History of Psychology", exam.DifficultyEasy},
		{"The 'fight or flight' response is triggered by which system?", []string{"Parasympathetic", "Sympathetic", "Somatic", "Central"}, 1, "The sympathetic nervous system prepares the body for stress.", "Biological Bases", exam.DifficultyMedium},
	},
	exam.CategoryAPWorld: {
		{"The Silk Road primarily connected which two regions?", []string{"Europe and Africa", "China and the Mediterranean", "Americas and Europe", "India and Japan"}, 1, "It was a major trade route between the East and West.", "Trade Routes", exam.DifficultyEasy},
		{"The Industrial Revolution first began in which country?", []string{"USA", "France", "Great Britain", "Germany"}, 2, "It started in Britain in the late 1700s.", "Modern Era", exam.DifficultyEasy},
	},
	exam.CategoryAPLit: {
		{"A poem with 14 lines and a specific rhyme scheme is called a ____?", []string{"Ode", "Sonnet", "Haiku", "Epic"}, 1, "A sonnet has 14 lines, typically in iambic pentameter.", "Poetry", exam.DifficultyEasy},
		{"Which literary device involves a comparison using 'like' or 'as'?", []string{"Metaphor", "Simile", "Personification", "Alliteration"}, 1, "A simile uses comparison words.", "Literary Devices", exam.DifficultyEasy},
	},
	exam.CategoryDefault: {
		{"Capital of France?", []string{"London", "Berlin", "Paris", "Madrid"}, 2, "Paris.", "Knowledge", exam.DifficultyEasy},
		{"Red Planet?", []string{"Venus", "Mars", "Jupiter", "Saturn"}, 1, "Mars.", "Science", exam.DifficultyEasy},
	},
}
