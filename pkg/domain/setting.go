package domain

// SettingExcludedPages is the default settings key holding excluded page ids
const SettingExcludedPages = "exclude_pages"
