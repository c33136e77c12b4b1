package usecase

// coalesce returns val when non-empty, otherwise fallback.
func (uc *implUseCase) coalesce(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}
