package documents

// ViewState: görünümün o anki filtre/sıralama/sayfa durumu. Çekirdek
// dönüşümler durumsuzdur; durum geçişleri burada, değer kopyalarıyla yapılır.
type ViewState struct {
	Search         string         `json:"search"`
	TransferStatus TransferStatus `json:"transfer_status"`
	SortField      SortField      `json:"sort_field"`
	SortDirection  SortDirection  `json:"sort_direction"`
	Page           int            `json:"page"`
	PageSize       int            `json:"page_size"`
}

func DefaultViewState() ViewState {
	return ViewState{
		TransferStatus: TransferAll,
		SortField:      SortByInvoiceDate,
		SortDirection:  SortDesc,
		Page:           1,
		PageSize:       10,
	}
}

// ToggleSort: aktif alana tekrar tıklanırsa yön çevrilir; yeni alan
// seçilirse yön artan olur ve sayfa 1'e döner.
func (s ViewState) ToggleSort(field SortField) ViewState {
	if s.SortField == field {
		if s.SortDirection == SortAsc {
			s.SortDirection = SortDesc
		} else {
			s.SortDirection = SortAsc
		}
	} else {
		s.SortField = field
		s.SortDirection = SortAsc
	}
	s.Page = 1
	return s
}

// WithSearch: arama terimi değişince sayfa 1'e döner.
func (s ViewState) WithSearch(term string) ViewState {
	s.Search = term
	s.Page = 1
	return s
}

// WithTransferStatus: aktarım filtresi değişince sayfa 1'e döner.
func (s ViewState) WithTransferStatus(status TransferStatus) ViewState {
	s.TransferStatus = status
	s.Page = 1
	return s
}
