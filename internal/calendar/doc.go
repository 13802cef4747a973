// Package calendar holds the value types shared by the date coordinator and its
// consumers: civil dates, update-source tags and month descriptors.
//
// Date is a plain comparable struct, so == is value equality and two dates
// parsed from the same string are always equal. Month comparisons look at
// year and month together; 2024-03-31 and 2025-03-01 are in different months.
package calendar
