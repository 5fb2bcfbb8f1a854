package card

// Link is a social link entry as held by a draft.
type Link struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

// Snapshot is the persisted state a draft can be hydrated from. It mirrors
// the stored card record without depending on the storage layer.
type Snapshot struct {
	ID        string
	Title     string
	Company   string
	Phone     string
	Email     string
	Website   string
	AvatarURL string
	Theme     Theme
	Layout    Layout
	Shape     Shape
	Published bool
}

// Draft is the single working copy of a user's card. All mutations are
// local and synchronous; nothing here touches the network. Theme and layout
// updates merge into their substructure, sibling keys stay untouched.
type Draft struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	AvatarURL string `json:"avatar_url"`
	Theme     Theme  `json:"theme"`
	Layout    Layout `json:"layout"`
	Shape     Shape  `json:"shape"`
	Published bool   `json:"is_published"`
	Links     []Link `json:"links"`
}

// NewDraft returns an empty draft with the default theme, layout and shape.
// The email seeds from the account email so a fresh card is not blank.
func NewDraft(accountEmail string) *Draft {
	return &Draft{
		Email:  accountEmail,
		Theme:  DefaultTheme(),
		Layout: DefaultLayout(),
		Shape:  DefaultShape,
		Links:  []Link{},
	}
}

// LoadFrom replaces the entire draft with the persisted state. Calling it
// again simply overwrites with the newer input, last load wins, no merge.
func (d *Draft) LoadFrom(rec Snapshot, links []Link) {
	d.ID = rec.ID
	d.Title = rec.Title
	d.Company = rec.Company
	d.Phone = rec.Phone
	d.Email = rec.Email
	d.Website = rec.Website
	d.AvatarURL = rec.AvatarURL
	d.Theme = rec.Theme
	d.Layout = rec.Layout
	d.Shape = rec.Shape
	d.Published = rec.Published
	d.Links = make([]Link, len(links))
	copy(d.Links, links)
}

func (d *Draft) SetTitle(v string)     { d.Title = v }
func (d *Draft) SetCompany(v string)   { d.Company = v }
func (d *Draft) SetPhone(v string)     { d.Phone = v }
func (d *Draft) SetEmail(v string)     { d.Email = v }
func (d *Draft) SetWebsite(v string)   { d.Website = v }
func (d *Draft) SetAvatarURL(v string) { d.AvatarURL = v }
func (d *Draft) SetPublished(v bool)   { d.Published = v }

// SetThemeColor updates one color slot, leaving the other three untouched.
func (d *Draft) SetThemeColor(key ThemeColor, value string) {
	switch key {
	case ColorPrimary:
		d.Theme.Primary = value
	case ColorSecondary:
		d.Theme.Secondary = value
	case ColorBackground:
		d.Theme.Background = value
	case ColorText:
		d.Theme.Text = value
	}
}

// SetShape updates the card outline.
func (d *Draft) SetShape(s Shape) { d.Shape = s }

// SetLayoutStyle updates only the layout style.
func (d *Draft) SetLayoutStyle(v string) { d.Layout.Style = v }

// SetAlignment updates only the layout alignment.
func (d *Draft) SetAlignment(v string) { d.Layout.Alignment = v }

// SetFont updates only the layout font.
func (d *Draft) SetFont(v string) { d.Layout.Font = v }

// AddLink appends a persisted link to the in-memory list.
func (d *Draft) AddLink(l Link) {
	d.Links = append(d.Links, l)
}

// RemoveLink drops the link with the given id; unknown ids are a no-op.
func (d *Draft) RemoveLink(id string) {
	kept := d.Links[:0]
	for _, l := range d.Links {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	d.Links = kept
}

// Snapshot returns the persistable view of the draft.
func (d *Draft) Snapshot() Snapshot {
	return Snapshot{
		ID:        d.ID,
		Title:     d.Title,
		Company:   d.Company,
		Phone:     d.Phone,
		Email:     d.Email,
		Website:   d.Website,
		AvatarURL: d.AvatarURL,
		Theme:     d.Theme,
		Layout:    d.Layout,
		Shape:     d.Shape,
		Published: d.Published,
	}
}
