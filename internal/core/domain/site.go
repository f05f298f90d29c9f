package domain

// MaintenancePage is served for storefront paths while maintenance is on.
const MaintenancePage = `
      <h1 style="text-align:center;margin-top:20vh;">
        🔧 網站維護中!<br>請耐心等待!
      </h1>
    `

// Maintenance is the persisted maintenance flag document.
type Maintenance struct {
	Maintenance bool `json:"maintenance"`
}

// Announcement is the persisted banner document.
type Announcement struct {
	Text string `json:"text"`
}
