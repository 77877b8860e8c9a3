package contributions

// DateLayout is the date format the contribution feed uses
const DateLayout = "2006-01-02"
