package clades

// SourceURL is where the curated table is maintained.
const SourceURL = "https://github.com/tolkit/telomeric-identifier/tree/main/clades/curated.csv"

var table = []Clade{
	{"Accipitriformes", []string{"AACCCT"}},
	{"Actiniaria", []string{"AACCCT"}},
	{"Anura", []string{"AACCCT"}},
	{"Apiales", []string{"AAACCCT"}},
	{"Aplousobranchia", []string{"AACCCT"}},
	{"Asterales", []string{"AAACCCT"}},
	{"Buxales", []string{"AAACCCT"}},
	{"Caprimulgiformes", []string{"AACCCT"}},
	{"Carangiformes", []string{"AACCCT"}},
	{"Carcharhiniformes", []string{"AACCCT"}},
	{"Cardiida", []string{"AACCCT"}},
	{"Carnivora", []string{"AACCCT"}},
	{"Caryophyllales", []string{"AAACCCT"}},
	{"Cheilostomatida", []string{"AAACCCC"}},
	{"Chiroptera", []string{"AACCCT"}},
	{"Chlamydomonadales", []string{"AACCCT"}},
	{"Coleoptera", []string{"AACCT", "ACCTG", "AACAGACCCG", "AACCC"}},
	{"Crassiclitellata", []string{"AAGGAC"}},
	{"Cypriniformes", []string{"AACCCT"}},
	{"Eucoccidiorida", []string{"AAACCCT"}},
	{"Fabales", []string{"AAACCCT"}},
	{"Fagales", []string{"AAACCCT"}},
	{"Forcipulatida", []string{"AACCCT"}},
	{"Hemiptera", []string{"AAACCACCCT", "AACCATCCCT"}},
	{"Heteronemertea", []string{"AACCCT"}},
	{"Hirudinida", []string{"AACCCT"}},
	{"Hymenoptera", []string{"AAACCC", "AAAGAACCT", "AACCCAGACGC", "AACCCGAACCT", "AACCCTGACGC", "AAAATTGTCCGTCC", "AACCC", "AACCCCAACCT", "AAATGTGGAGG", "AACCCAGACCC", "ACCCAG", "AACCCAGACCT", "AACCCT", "ACGGCAGCG", "AACCT"}},
	{"Hypnales", []string{"AAACCCT"}},
	{"Labriformes", []string{"AACCCT"}},
	{"Lamiales", []string{"AAACCCT"}},
	{"Lepidoptera", []string{"AACCT"}},
	{"Malpighiales", []string{"AAACCCT"}},
	{"Myrtales", []string{"AAACCCT"}},
	{"Odonata", []string{"AACCC"}},
	{"Orthoptera", []string{"AACCT"}},
	{"Pectinida", []string{"AACCCT"}},
	{"Perciformes", []string{"AACCCT"}},
	{"Phlebobranchia", []string{"AACCCT"}},
	{"Phyllodocida", []string{"AACCCT"}},
	{"Plecoptera", []string{"AACCT"}},
	{"Pleuronectiformes", []string{"AACCCT"}},
	{"Poales", []string{"AAACCCT"}},
	{"Rodentia", []string{"AACCCT"}},
	{"Rosales", []string{"AAACCCT"}},
	{"Salmoniformes", []string{"AACCCT"}},
	{"Sapindales", []string{"AAACCCT"}},
	{"Solanales", []string{"AACCCTG"}},
	{"Symphypleona", []string{"AACCT"}},
	{"Syngnathiformes", []string{"AACCCT"}},
	{"Trichoptera", []string{"AACCT"}},
	{"Trochida", []string{"AACCCT"}},
	{"Venerida", []string{"AACCCT"}},
}
