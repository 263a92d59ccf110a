package epub

func ptr(s string) *string {
	return &s
}
