package memory

import (
	"time"

	"github.com/trophycast/predictor-api/internal/domain/match"
)

// SeedMatches returns the Champions Trophy 2025 fixture list. All matches
// start at 09:00 UTC (14:00 PKT).
func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:        1,
			Team1:     match.Team{Name: "Pakistan", Logo: "/pakistan.png"},
			Team2:     match.Team{Name: "New Zealand", Logo: "/newzealand.png"},
			Matchday:  "1st Match, Group A",
			StartTime: matchStart(2025, time.February, 19),
			Team1Form: []match.FormResult{match.FormLoss, match.FormWin, match.FormLoss},
			Team2Form: []match.FormResult{match.FormWin, match.FormWin, match.FormWin},
		},
		{
			ID:        2,
			Team1:     match.Team{Name: "Bangladesh", Logo: "/bangladesh.png"},
			Team2:     match.Team{Name: "India", Logo: "/india.png"},
			Matchday:  "2nd Match, Group A",
			StartTime: matchStart(2025, time.February, 20),
			Team1Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
			Team2Form: []match.FormResult{match.FormWin, match.FormWin, match.FormWin},
		},
		{
			ID:        3,
			Team1:     match.Team{Name: "Afghanistan", Logo: "/afghanistan.png"},
			Team2:     match.Team{Name: "South Africa", Logo: "/southafrica.png"},
			Matchday:  "3rd Match, Group B",
			StartTime: matchStart(2025, time.February, 21),
			Team1Form: []match.FormResult{match.FormWin, match.FormWin, match.FormWin},
			Team2Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
		},
		{
			ID:        4,
			Team1:     match.Team{Name: "Australia", Logo: "/australia.png"},
			Team2:     match.Team{Name: "England", Logo: "/england.png"},
			Matchday:  "4th Match, Group B",
			StartTime: matchStart(2025, time.February, 22),
			Team1Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
			Team2Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
		},
		{
			ID:        5,
			Team1:     match.Team{Name: "Pakistan", Logo: "/pakistan.png"},
			Team2:     match.Team{Name: "India", Logo: "/india.png"},
			Matchday:  "5th Match, Group A",
			StartTime: matchStart(2025, time.February, 23),
			Team1Form: []match.FormResult{match.FormLoss, match.FormWin, match.FormLoss},
			Team2Form: []match.FormResult{match.FormWin, match.FormWin, match.FormWin},
		},
		{
			ID:        6,
			Team1:     match.Team{Name: "Bangladesh", Logo: "/bangladesh.png"},
			Team2:     match.Team{Name: "New Zealand", Logo: "/newzealand.png"},
			Matchday:  "6th Match, Group A",
			StartTime: matchStart(2025, time.February, 24),
			Team1Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
			Team2Form: []match.FormResult{match.FormWin, match.FormWin, match.FormWin},
		},
		{
			ID:        7,
			Team1:     match.Team{Name: "Australia", Logo: "/australia.png"},
			Team2:     match.Team{Name: "South Africa", Logo: "/southafrica.png"},
			Matchday:  "7th Match, Group B",
			StartTime: matchStart(2025, time.February, 25),
			Team1Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
			Team2Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
		},
		{
			ID:        8,
			Team1:     match.Team{Name: "Afghanistan", Logo: "/afghanistan.png"},
			Team2:     match.Team{Name: "England", Logo: "/england.png"},
			Matchday:  "8th Match, Group B",
			StartTime: matchStart(2025, time.February, 26),
			Team1Form: []match.FormResult{match.FormWin, match.FormWin, match.FormWin},
			Team2Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
		},
		{
			ID:        9,
			Team1:     match.Team{Name: "Pakistan", Logo: "/pakistan.png"},
			Team2:     match.Team{Name: "Bangladesh", Logo: "/bangladesh.png"},
			Matchday:  "9th Match, Group A",
			StartTime: matchStart(2025, time.February, 27),
			Team1Form: []match.FormResult{match.FormLoss, match.FormWin, match.FormLoss},
			Team2Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
		},
		{
			ID:        10,
			Team1:     match.Team{Name: "Afghanistan", Logo: "/afghanistan.png"},
			Team2:     match.Team{Name: "Australia", Logo: "/australia.png"},
			Matchday:  "10th Match, Group B",
			StartTime: matchStart(2025, time.February, 28),
			Team1Form: []match.FormResult{match.FormWin, match.FormWin, match.FormWin},
			Team2Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
		},
		{
			ID:        11,
			Team1:     match.Team{Name: "South Africa", Logo: "/southafrica.png"},
			Team2:     match.Team{Name: "England", Logo: "/england.png"},
			Matchday:  "11th Match, Group B",
			StartTime: matchStart(2025, time.March, 1),
			Team1Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
			Team2Form: []match.FormResult{match.FormLoss, match.FormLoss, match.FormLoss},
		},
		{
			ID:        12,
			Team1:     match.Team{Name: "New Zealand", Logo: "/newzealand.png"},
			Team2:     match.Team{Name: "India", Logo: "/india.png"},
			Matchday:  "12th Match, Group A",
			StartTime: matchStart(2025, time.March, 2),
			Team1Form: []match.FormResult{match.FormWin, match.FormWin, match.FormWin},
			Team2Form: []match.FormResult{match.FormWin, match.FormWin, match.FormWin},
		},
		{
			ID:        13,
			Team1:     match.Team{Name: "Australia", Logo: "/australia.png"},
			Team2:     match.Team{Name: "India", Logo: "/india.png"},
			Matchday:  "1st Semi-Final (A1 v B2)",
			StartTime: matchStart(2025, time.March, 4),
			Team1Form: []match.FormResult{match.FormWin, match.FormNoResult, match.FormNoResult},
			Team2Form: []match.FormResult{match.FormWin, match.FormWin, match.FormWin},
		},
		{
			ID:        14,
			Team1:     match.Team{Name: "New Zealand", Logo: "/newzealand.png"},
			Team2:     match.Team{Name: "South Africa", Logo: "/southafrica.png"},
			Matchday:  "2nd Semi-Final (B1 v A2)",
			StartTime: matchStart(2025, time.March, 5),
			Team1Form: []match.FormResult{match.FormWin, match.FormWin, match.FormLoss},
			Team2Form: []match.FormResult{match.FormWin, match.FormNoResult, match.FormWin},
		},
		{
			ID:        15,
			Team1:     match.Team{Name: "TBC", Logo: "/tbc.png"},
			Team2:     match.Team{Name: "TBC", Logo: "/tbc.png"},
			Matchday:  "Final",
			StartTime: matchStart(2025, time.March, 9),
			Team1Form: []match.FormResult{match.FormTie, match.FormTie, match.FormTie},
			Team2Form: []match.FormResult{match.FormTie, match.FormTie, match.FormTie},
		},
	}
}

// SeedSquads returns the tournament rosters keyed by team name.
func SeedSquads() map[string][]match.Player {
	return map[string][]match.Player{
		"India": {
			{ID: "ind1", Name: "Rohit Sharma"},
			{ID: "ind2", Name: "Shubman Gill"},
			{ID: "ind3", Name: "Virat Kohli"},
			{ID: "ind4", Name: "Shreyas Iyer"},
			{ID: "ind5", Name: "KL Rahul"},
			{ID: "ind6", Name: "Rishabh Pant"},
			{ID: "ind7", Name: "Hardik Pandya"},
			{ID: "ind8", Name: "Axar Patel"},
			{ID: "ind9", Name: "Washington Sundar"},
			{ID: "ind10", Name: "Kuldeep Yadav"},
			{ID: "ind11", Name: "Harshit Rana"},
			{ID: "ind12", Name: "Mohd. Shami"},
			{ID: "ind13", Name: "Arshdeep Singh"},
			{ID: "ind14", Name: "Ravindra Jadeja"},
			{ID: "ind15", Name: "Varun Chakaravarthy"},
		},
		"Pakistan": {
			{ID: "pak1", Name: "Mohammad Rizwan"},
			{ID: "pak2", Name: "Babar Azam"},
			{ID: "pak3", Name: "Fakhar Zaman"},
			{ID: "pak4", Name: "Kamran Ghulam"},
			{ID: "pak5", Name: "Saud Shakeel"},
			{ID: "pak6", Name: "Tayyab Tahir"},
			{ID: "pak7", Name: "Faheem Ashraf"},
			{ID: "pak8", Name: "Khushdil Shah"},
			{ID: "pak9", Name: "Salman Ali Agha"},
			{ID: "pak10", Name: "Usman Khan"},
			{ID: "pak11", Name: "Abrar Ahmed"},
			{ID: "pak12", Name: "Haris Rauf"},
			{ID: "pak13", Name: "Mohammad Hasnain"},
			{ID: "pak14", Name: "Naseem Shah"},
			{ID: "pak15", Name: "Shaheen Shah Afridi"},
		},
		"Australia": {
			{ID: "aus1", Name: "Steve Smith"},
			{ID: "aus2", Name: "Sean Abbott"},
			{ID: "aus3", Name: "Alex Carey"},
			{ID: "aus4", Name: "Ben Dwarshuis"},
			{ID: "aus5", Name: "Nathan Ellis"},
			{ID: "aus6", Name: "Jake Fraser-McGurk"},
			{ID: "aus7", Name: "Aaron Hardie"},
			{ID: "aus8", Name: "Travis Head"},
			{ID: "aus9", Name: "Josh Inglis"},
			{ID: "aus10", Name: "Spencer Johnson"},
			{ID: "aus11", Name: "Marnus Labuschagne"},
			{ID: "aus12", Name: "Glenn Maxwell"},
			{ID: "aus13", Name: "Tanveer Sangha"},
			{ID: "aus14", Name: "Matthew Short"},
			{ID: "aus15", Name: "Adam Zampa"},
		},
		"New Zealand": {
			{ID: "nz1", Name: "Mitchell Santner"},
			{ID: "nz2", Name: "Michael Bracewell"},
			{ID: "nz3", Name: "Mark Chapman"},
			{ID: "nz4", Name: "Devon Conway"},
			{ID: "nz5", Name: "Lockie Ferguson"},
			{ID: "nz6", Name: "Matt Henry"},
			{ID: "nz7", Name: "Tom Latham"},
			{ID: "nz8", Name: "Daryl Mitchell"},
			{ID: "nz9", Name: "Will O'Rourke"},
			{ID: "nz10", Name: "Glenn Phillips"},
			{ID: "nz11", Name: "Rachin Ravindra"},
			{ID: "nz12", Name: "Jacob Duffy"},
			{ID: "nz13", Name: "Nathan Smith"},
			{ID: "nz14", Name: "Kane Williamson"},
			{ID: "nz15", Name: "Will Young"},
		},
		"Bangladesh": {
			{ID: "ban1", Name: "Nazmul Hossain Shanto"},
			{ID: "ban2", Name: "Soumya Sarkar"},
			{ID: "ban3", Name: "Tanzid Hasan"},
			{ID: "ban4", Name: "Tawhid Hridoy"},
			{ID: "ban5", Name: "Mushfiqur Rahim"},
			{ID: "ban6", Name: "MD Mahmud Ullah"},
			{ID: "ban7", Name: "Jaker Ali Anik"},
			{ID: "ban8", Name: "Mehidy Hasan Miraz"},
			{ID: "ban9", Name: "Rishad Hossain"},
			{ID: "ban10", Name: "Taskin Ahmed"},
			{ID: "ban11", Name: "Mustafizur Rahman"},
			{ID: "ban12", Name: "Parvez Hossai Emon"},
			{ID: "ban13", Name: "Nasum Ahmed"},
			{ID: "ban14", Name: "Tanzim Hasan Sakib"},
			{ID: "ban15", Name: "Nahid Rana"},
		},
		"Afghanistan": {
			{ID: "afg1", Name: "Hashmatullah Shahidi"},
			{ID: "afg2", Name: "Ibrahim Zadran"},
			{ID: "afg3", Name: "Rahmanullah Gurbaz"},
			{ID: "afg4", Name: "Sediqullah Atal"},
			{ID: "afg5", Name: "Rahmat Shah"},
			{ID: "afg6", Name: "Ikram Alikhil"},
			{ID: "afg7", Name: "Gulbadin Naib"},
			{ID: "afg8", Name: "Azmatullah Omarzai"},
			{ID: "afg9", Name: "Mohammad Nabi"},
			{ID: "afg10", Name: "Rashid Khan"},
			{ID: "afg11", Name: "Nangyal Kharoti"},
			{ID: "afg12", Name: "Noor Ahmad"},
			{ID: "afg13", Name: "Fazalhaq Farooqi"},
			{ID: "afg14", Name: "Farid Malik"},
			{ID: "afg15", Name: "Naveed Zadran"},
		},
		"England": {
			{ID: "eng1", Name: "Jos Buttler"},
			{ID: "eng2", Name: "Jofra Archer"},
			{ID: "eng3", Name: "Gus Atkinson"},
			{ID: "eng4", Name: "Jacob Bethell"},
			{ID: "eng5", Name: "Harry Brook"},
			{ID: "eng6", Name: "Brydon Carse"},
			{ID: "eng7", Name: "Ben Duckett"},
			{ID: "eng8", Name: "Jamie Overton"},
			{ID: "eng9", Name: "Jamie Smith"},
			{ID: "eng10", Name: "Liam Livingstone"},
			{ID: "eng11", Name: "Adil Rashid"},
			{ID: "eng12", Name: "Joe Root"},
			{ID: "eng13", Name: "Saqib Mahmood"},
			{ID: "eng14", Name: "Phil Salt"},
			{ID: "eng15", Name: "Mark Wood"},
		},
		"South Africa": {
			{ID: "sa1", Name: "Temba Bavuma"},
			{ID: "sa2", Name: "Tony de Zorzi"},
			{ID: "sa3", Name: "Marco Jansen"},
			{ID: "sa4", Name: "Heinrich Klaasen"},
			{ID: "sa5", Name: "Keshav Maharaj"},
			{ID: "sa6", Name: "Aiden Markram"},
			{ID: "sa7", Name: "David Miller"},
			{ID: "sa8", Name: "Wiaan Mulder"},
			{ID: "sa9", Name: "Lungi Ngidi"},
			{ID: "sa10", Name: "Kagiso Rabada"},
			{ID: "sa11", Name: "Ryan Rickelton"},
			{ID: "sa12", Name: "Tabraiz Shamsi"},
			{ID: "sa13", Name: "Tristan Stubbs"},
			{ID: "sa14", Name: "Rassie van der Dussen"},
			{ID: "sa15", Name: "Corbin Bosch"},
		},
	}
}

func matchStart(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
}
